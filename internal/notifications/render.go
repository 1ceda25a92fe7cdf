package notifications

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"

	"github.com/sbilibin2017/gw-parent-profile/internal/mailer"
	"github.com/sbilibin2017/gw-parent-profile/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ErrUnknownJob is returned for job types the worker cannot render.
var ErrUnknownJob = errors.New("unknown job type")

// Renderer turns email jobs into messages.
type Renderer struct {
	publicURL  string
	adminEmail string
}

// NewRenderer returns a renderer that links activations to publicURL and
// sends alerts to adminEmail.
func NewRenderer(publicURL, adminEmail string) *Renderer {
	return &Renderer{publicURL: publicURL, adminEmail: adminEmail}
}

// Render builds the message for job.
func (r *Renderer) Render(job models.EmailJob) (mailer.Message, error) {
	switch job.Type {
	case models.EmailJobActivation:
		if job.Email == "" || job.Token == "" {
			return mailer.Message{}, fmt.Errorf("activation job %s: missing email or token", job.ID)
		}
		link := r.publicURL + "/activate?token=" + url.QueryEscape(job.Token)
		body, err := execute("activation.html", struct{ Link string }{link})
		if err != nil {
			return mailer.Message{}, err
		}
		return mailer.Message{
			To:      []string{job.Email},
			Subject: "Activate your account",
			HTML:    body,
		}, nil

	case models.EmailJobNewChildAlert:
		body, err := execute("new_child_alert.html", job)
		if err != nil {
			return mailer.Message{}, err
		}
		return mailer.Message{
			To:      []string{r.adminEmail},
			Subject: fmt.Sprintf("New Children added with name : %s by parent id: %d", job.ChildName, job.ParentID),
			HTML:    body,
		}, nil
	}
	return mailer.Message{}, fmt.Errorf("%w %q", ErrUnknownJob, job.Type)
}

func execute(name string, data any) (string, error) {
	var b bytes.Buffer
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}
