package tareas

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// plazoTarea tope de una corrida en segundo plano. No hay cancelación a medio
// camino: una tarea termina (éxito o error de dominio) o truena; las
// escrituras confirmadas hasta ese punto permanecen.
const plazoTarea = 10 * time.Minute

// Estado avance de una tarea: 0-100 con mensaje legible.
type Estado struct {
	ID        string
	Nombre    string
	Avance    int
	Mensaje   string
	Terminada bool
	ConError  bool
}

// Ejecutor lanza corridas fire-and-forget en goroutines independientes,
// desacopladas del ciclo HTTP, y conserva su avance para consulta.
type Ejecutor struct {
	mu     sync.RWMutex
	tareas map[string]*Estado
}

// NewEjecutor construye el ejecutor.
func NewEjecutor() *Ejecutor {
	return &Ejecutor{tareas: make(map[string]*Estado)}
}

// Lanzar arranca fn en una goroutine con su propio contexto y plazo acotado.
// fn reporta avance vía el callback. Devuelve el id de la tarea.
func (e *Ejecutor) Lanzar(nombre string, fn func(ctx context.Context, avance func(int, string)) error) string {
	id := uuid.New().String()

	e.mu.Lock()
	e.tareas[id] = &Estado{ID: id, Nombre: nombre, Mensaje: "en espera"}
	e.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), plazoTarea)
		defer cancel()

		avance := func(pct int, mensaje string) {
			e.mu.Lock()
			if t, ok := e.tareas[id]; ok && !t.Terminada {
				t.Avance = pct
				t.Mensaje = mensaje
			}
			e.mu.Unlock()
		}

		err := fn(ctx, avance)

		e.mu.Lock()
		if t, ok := e.tareas[id]; ok {
			t.Terminada = true
			if err != nil {
				t.ConError = true
				t.Mensaje = err.Error()
			} else {
				t.Avance = 100
			}
		}
		e.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Str("tarea", nombre).Str("id", id).Msg("tarea terminada con error")
		} else {
			log.Info().Str("tarea", nombre).Str("id", id).Msg("tarea terminada")
		}
	}()

	return id
}

// Estado devuelve una copia del avance de la tarea.
func (e *Ejecutor) Estado(id string) (Estado, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.tareas[id]
	if !ok {
		return Estado{}, false
	}
	return *t, true
}
