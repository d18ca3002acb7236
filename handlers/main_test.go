package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastbites-api/config"
	"fastbites-api/handlers"
	"fastbites-api/middleware"
	"fastbites-api/models"
	"fastbites-api/payments"
	"fastbites-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubMailer struct {
	lastVerificationCode string
	lastResetURL         string
	welcomed             []string
	resetConfirmed       []string
}

func (m *stubMailer) SendVerificationEmail(to, code string) error {
	m.lastVerificationCode = code
	return nil
}

func (m *stubMailer) SendWelcomeEmail(to, name string) error {
	m.welcomed = append(m.welcomed, to)
	return nil
}

func (m *stubMailer) SendPasswordResetEmail(to, resetURL string) error {
	m.lastResetURL = resetURL
	return nil
}

func (m *stubMailer) SendResetSuccessEmail(to string) error {
	m.resetConfirmed = append(m.resetConfirmed, to)
	return nil
}

type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, file interface{}) (string, error) {
	return "https://images.example/uploaded.png", nil
}

type stubPayments struct {
	lastParams payments.CheckoutParams
	err        error
}

func (p *stubPayments) CreateCheckoutSession(params payments.CheckoutParams) (*payments.Session, error) {
	p.lastParams = params
	if p.err != nil {
		return nil, p.err
	}
	return &payments.Session{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

type testEnv struct {
	router   *gin.Engine
	mail     *stubMailer
	payments *stubPayments
}

// setupTest wires an in-memory database and stubbed external services
// behind the real router.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	env := &testEnv{
		mail:     &stubMailer{},
		payments: &stubPayments{},
	}
	handlers.Mail = env.mail
	handlers.Images = stubUploader{}
	handlers.Payments = env.payments

	env.router = gin.New()
	routes.SetupRoutes(env.router)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body *bytes.Buffer, contentType string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if user != nil {
		token, err := middleware.GenerateToken(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: config.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doJSON(t *testing.T, method, path, body string, user *models.User) *httptest.ResponseRecorder {
	return e.do(t, method, path, bytes.NewBufferString(body), "application/json", user)
}

func createUser(t *testing.T, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{
		Fullname:     "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Contact:      "5551234567",
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withImage {
		fw, err := w.CreateFormFile("image", "image.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not-a-real-png"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
