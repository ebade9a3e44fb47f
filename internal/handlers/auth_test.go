package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"site-tracker/internal/database"
	"site-tracker/internal/models"
)

func TestRegisterCreatesCrewMember(t *testing.T) {
	r := setup(t)

	w := postForm(r, "/register", url.Values{"name": {"alice"}, "password": {"hunter22"}}, nil)
	if loc := redirectTarget(t, w); loc != "/login" {
		t.Fatalf("redirect to %q, want /login", loc)
	}

	var user models.User
	if err := database.DB.Where("name = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if user.Role != models.RoleCrewMember {
		t.Fatalf("role = %q, want crew_member", user.Role)
	}
	if user.PasswordHash == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	r := setup(t)

	form := url.Values{"name": {"bob"}, "password": {"secret12"}}
	if loc := redirectTarget(t, postForm(r, "/register", form, nil)); loc != "/login" {
		t.Fatalf("first registration redirected to %q", loc)
	}
	if loc := redirectTarget(t, postForm(r, "/register", form, nil)); loc != "/register" {
		t.Fatalf("duplicate registration redirected to %q, want /register", loc)
	}

	var count int64
	database.DB.Model(&models.User{}).Where("name = ?", "bob").Count(&count)
	if count != 1 {
		t.Fatalf("user rows for bob = %d, want 1", count)
	}
}

func TestLoginWrongPasswordEstablishesNoSession(t *testing.T) {
	r := setup(t)
	createUser(t, "carol", "correct-horse", models.RoleCrewMember)

	w := postForm(r, "/login", url.Values{"name": {"carol"}, "password": {"wrong"}}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials.") {
		t.Fatalf("expected invalid credentials message")
	}

	// no usable session comes back from a failed login
	w2 := get(r, "/materials", w.Result().Cookies())
	if loc := redirectTarget(t, w2); loc != "/login" {
		t.Fatalf("materials without session redirected to %q, want /login", loc)
	}
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	r := setup(t)

	w := postForm(r, "/login", url.Values{"name": {"nobody"}, "password": {"x"}}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid credentials.") {
		t.Fatalf("unknown user should get the same invalid-credentials message")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	r := setup(t)
	createUser(t, "dave", "pass1234", models.RoleCrewMember)
	cookies := login(t, r, "dave", "pass1234")

	if w := get(r, "/materials", cookies); w.Code != http.StatusOK {
		t.Fatalf("materials with session: status %d", w.Code)
	}

	w := get(r, "/logout", cookies)
	if loc := redirectTarget(t, w); loc != "/login" {
		t.Fatalf("logout redirected to %q", loc)
	}

	// the cleared cookie replaces the old session
	w2 := get(r, "/materials", w.Result().Cookies())
	if loc := redirectTarget(t, w2); loc != "/login" {
		t.Fatalf("materials after logout redirected to %q, want /login", loc)
	}
}
