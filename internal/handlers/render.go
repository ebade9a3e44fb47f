package handlers

import (
	"site-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and feeds the current user plus any pending flash
// messages into every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := currentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUserName"] = u.Name
		data["CurrentUserRole"] = u.Role
	}

	data["Flashes"] = popFlashes(c)

	c.HTML(status, tmpl, data)
}

// currentUser pulls the user that middleware.InjectUser resolved.
func currentUser(c *gin.Context) (models.User, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	u, ok := uVal.(models.User)
	return u, ok
}

// creatorID is the nullable FK value stored on rows created by the
// current user.
func creatorID(c *gin.Context) *uint {
	u, ok := currentUser(c)
	if !ok {
		return nil
	}
	id := u.ID
	return &id
}

type flashMessage struct {
	Level   string
	Message string
}

func flash(c *gin.Context, level, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, level)
	_ = sess.Save()
}

func popFlashes(c *gin.Context) []flashMessage {
	sess := sessions.Default(c)

	var out []flashMessage
	for _, level := range []string{"success", "info", "warning", "error"} {
		for _, f := range sess.Flashes(level) {
			if msg, ok := f.(string); ok {
				out = append(out, flashMessage{Level: level, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		_ = sess.Save()
	}
	return out
}
