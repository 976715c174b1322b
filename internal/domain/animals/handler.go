package animals

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"zookeepr-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// MsgNotProperlyFormatted es el texto fijo de la respuesta 400 del alta.
const MsgNotProperlyFormatted = "The animal is not properly formatted"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Post("/", createAnimalHandler(svc, log))
		ar.Get("/{id}", getAnimalHandler(svc, log))
	})
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve los animales que cumplen todos los filtros. `personalityTraits` se puede repetir y exige todos los rasgos.
// @Tags animals
// @Produce json
// @Param personalityTraits query []string false "Rasgos requeridos (AND)" collectionFormat(multi)
// @Param diet query string false "Dieta exacta"
// @Param species query string false "Especie exacta"
// @Param name query string false "Nombre exacto"
// @Success 200 {array} Animal
// @Router /api/animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Query(r.URL.Query()))
		if err != nil {
			log.Error("list animals", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal por id
// @Tags animals
// @Produce json
// @Param id path string true "ID del animal"
// @Success 200 {object} Animal
// @Failure 404 "sin cuerpo"
// @Router /api/animals/{id} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if IsNotFound(err) {
				// 404 sin cuerpo
				w.WriteHeader(http.StatusNotFound)
				return
			}
			log.Error("get animal", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description Asigna id = cantidad actual de animales, valida y persiste la colección completa. Acepta JSON o formulario urlencoded.
// @Tags animals
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 200 {object} Animal
// @Failure 400 {string} string "The animal is not properly formatted"
// @Failure 500 {string} string "internal error"
// @Router /api/animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := readCandidate(w, r)
		if err != nil {
			writeText(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), c)
		if err != nil {
			if IsInvalid(err) {
				writeText(w, http.StatusBadRequest, MsgNotProperlyFormatted)
				return
			}
			log.Error("create animal", map[string]any{"error": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, a)
	}
}

// createAnimalRequest documenta el cuerpo esperado; el handler lo lee sin tipar.
type createAnimalRequest struct {
	Name              string   `json:"name" example:"Rex"`
	Species           string   `json:"species" example:"dog"`
	Diet              string   `json:"diet" example:"omnivore"`
	PersonalityTraits []string `json:"personalityTraits"`
}

func readCandidate(w http.ResponseWriter, r *http.Request) (Candidate, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case ct == "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return CandidateFromForm(r.PostForm), nil
	case ct == "application/json" || strings.HasSuffix(ct, "+json"):
	default:
		// otro tipo o sin Content-Type: el cuerpo no se lee, falla la validación con 400
		return Candidate{}, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		// sin cuerpo: candidato vacío, falla la validación con 400
		return Candidate{}, nil
	}
	return DecodeCandidate(body)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
