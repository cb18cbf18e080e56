package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sskcargo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo hashes on create, like the real repositories.
type fakeUserRepo struct {
	byEmail map[string]*models.AppUser
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.AppUser)}
}

func (f *fakeUserRepo) CreateUser(user *models.AppUser) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return errors.New("email already registered")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.AppUser, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func signupBody() []byte {
	b, _ := json.Marshal(map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "s3cret",
	})
	return b
}

func TestUserHandlerSignup(t *testing.T) {
	h := &UserHandler{Repo: newFakeUserRepo()}

	w := httptest.NewRecorder()
	h.Signup(w, httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(signupBody())))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, _ := json.Marshal(resp.Data)
	var user models.AppUser
	require.NoError(t, json.Unmarshal(data, &user))
	assert.Equal(t, "operator", user.Role, "role defaults")
	assert.Empty(t, user.Password, "hash never leaves the server")
}

func TestUserHandlerSignupValidation(t *testing.T) {
	h := &UserHandler{Repo: newFakeUserRepo()}

	body, _ := json.Marshal(map[string]string{"name": "Asha"})
	w := httptest.NewRecorder()
	h.Signup(w, httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandlerLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	h := &UserHandler{Repo: repo}

	w := httptest.NewRecorder()
	h.Signup(w, httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(signupBody())))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("valid credentials", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "s3cret"})
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp ApiResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		payload, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		token, _ := payload["token"].(string)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "wrong"})
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "nobody@example.com", "password": "s3cret"})
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
