package handlers

import (
	"errors"
	"net/http"

	"site-tracker/internal/database"
	"site-tracker/internal/forms"
	"site-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

func Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data."})
		return
	}
	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := database.DB.Where("name = ?", form.Name).First(&existing).Error; err == nil {
		flash(c, "error", "Username already exists.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Could not save user."})
		return
	}

	// every self-registered account starts as crew_member; admin is
	// seeded out-of-band
	user := models.User{
		Name:         form.Name,
		PasswordHash: string(hash),
		Role:         models.RoleCrewMember,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			flash(c, "error", "Username already exists.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Could not save user."})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

func Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data."})
		return
	}
	if err := form.Validate(); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": err.Error()})
		return
	}

	// the same message for unknown user and wrong password
	var user models.User
	if err := database.DB.Where("name = ?", form.Name).First(&user).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid credentials."})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/materials")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
