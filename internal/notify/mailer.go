package notify

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/DanielKiedis/TallerMecanico/internal/models"
)

// Mailer sends the confirmation mail over SMTP. With no SMTP host
// configured it logs the message instead of sending, so a dev install
// works without credentials.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	log  zerolog.Logger
}

func NewMailer(host string, port int, user, pass, from string, log zerolog.Logger) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from, log: log}
}

func (m *Mailer) Enabled() bool { return m.host != "" }

func (m *Mailer) Send(req *models.ServiceRequest) error {
	subject, body := Compose(req)
	if !m.Enabled() {
		m.log.Info().
			Str("to", req.Correo).
			Str("subject", subject).
			Msg("smtp not configured, confirmation mail skipped")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", req.Correo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// Compose builds the confirmation subject and HTML body from the
// request's variant, requester and vehicle details.
func Compose(req *models.ServiceRequest) (subject, body string) {
	vehicle := fmt.Sprintf("%s %s (%d)", req.MarcaCarro, req.ModeloCarro, req.AnoCarro)
	switch req.Variant {
	case models.VariantTow:
		subject = "Solicitud de Grúa Registrada - Taller Mecánico Pro"
		body = fmt.Sprintf(`
			<h2>¡Solicitud de Grúa Recibida!</h2>
			<p>Estimado(a) <strong>%s</strong>,</p>
			<p>Su solicitud de grúa ha sido registrada exitosamente.</p>
			<p><strong>Teléfono:</strong> %s</p>
			<p><strong>Vehículo:</strong> %s</p>
			<p><strong>Ubicación:</strong> %s</p>
			<p><strong>Falla reportada:</strong> %s</p>
			<p>Nuestro equipo de auxilio vial se pondrá en contacto con usted en los próximos 15-20 minutos.</p>`,
			req.Nombre, req.Telefono, vehicle, req.Ubicacion, req.DescripcionFalla)
	default:
		subject = "Confirmación de Cita - Taller Mecánico Pro"
		body = fmt.Sprintf(`
			<h2>¡Cita Confirmada!</h2>
			<p>Estimado(a) <strong>%s</strong>,</p>
			<p>Su cita ha sido registrada exitosamente en nuestro sistema.</p>
			<p><strong>Teléfono:</strong> %s</p>
			<p><strong>Vehículo:</strong> %s</p>
			<p><strong>Descripción:</strong> %s</p>
			<p>Nos pondremos en contacto en las próximas 24 horas para confirmar la fecha y hora exacta de su cita.</p>`,
			req.Nombre, req.Telefono, vehicle, req.Descripcion)
	}
	return subject, body
}
