package handlers

import (
	"net/http"

	"github.com/DanielKiedis/TallerMecanico/internal/repository"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
)

// ContentHTTP serves the public site content: the DB-backed catalog
// plus the static shop info blocks.
type ContentHTTP struct {
	catalog repository.CatalogRepository
}

func NewContentHTTP(c repository.CatalogRepository) *ContentHTTP {
	return &ContentHTTP{catalog: c}
}

// GET /services
func (h *ContentHTTP) Services() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.catalog.ListServices(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /offers
func (h *ContentHTTP) Offers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.catalog.ListOffers(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /location
func (h *ContentHTTP) Location() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]any{
			"direccion":            "Av. Tecnológico #1500, Col. Centro, Ciudad de México, CDMX 06300",
			"telefono":             "+52 (55) 1234-5678",
			"whatsapp":             "+52 (55) 8765-4321",
			"horario":              "Lunes a Viernes: 8:00 AM - 8:00 PM<br>Sábados: 9:00 AM - 4:00 PM<br>Domingos: Emergencias 24/7",
			"coordenadas":          map[string]float64{"lat": 19.4326, "lng": -99.1332},
			"servicios_especiales": "Grúa 24/7 • Diagnóstico gratuito • Parqueo vigilado",
		})
	}
}

// GET /about
func (h *ContentHTTP) About() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"historia":        "Fundado en 2010 por el Ing. Roberto Martínez, comenzamos como un pequeño taller familiar. Hoy, con más de 13 años de experiencia, hemos crecido hasta convertirnos en un referente de confianza en servicios automotrices.",
			"equipo":          "Contamos con 15 mecánicos certificados por las marcas líderes, 3 especialistas en electrónica automotriz y 2 ingenieros en diagnóstico avanzado.",
			"valores":         "Honestidad, calidad, responsabilidad y servicio al cliente. Garantía de 1 año en todos nuestros servicios.",
			"certificaciones": "ISO 9001:2015 • ASE Certified • AAA Approved Auto Repair",
		})
	}
}

// GET /info/mission-vision
func (h *ContentHTTP) MissionVision() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{
			"mision":   "Proveer servicios mecánicos de calidad con honestidad y profesionalismo, garantizando la seguridad y satisfacción de nuestros clientes.",
			"vision":   "Ser el taller mecánico líder en la región, reconocido por nuestra excelencia en servicio y tecnología de vanguardia.",
			"objetivo": "Garantizar la satisfacción total de nuestros clientes mediante servicios oportunos, personal calificado y precios competitivos.",
		})
	}
}
