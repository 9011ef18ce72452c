package tareas

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// esperarTerminada sondea el estado hasta que la tarea termina.
func esperarTerminada(t *testing.T, e *Ejecutor, id string) Estado {
	t.Helper()
	plazo := time.After(5 * time.Second)
	for {
		select {
		case <-plazo:
			t.Fatalf("la tarea %s no terminó a tiempo", id)
		case <-time.After(10 * time.Millisecond):
			if estado, ok := e.Estado(id); ok && estado.Terminada {
				return estado
			}
		}
	}
}

func TestLanzar_TareaExitosa(t *testing.T) {
	e := NewEjecutor()

	id := e.Lanzar("corrida de prueba", func(_ context.Context, avance func(int, string)) error {
		avance(50, "a la mitad")
		return nil
	})
	require.NotEmpty(t, id)

	estado := esperarTerminada(t, e, id)
	assert.Equal(t, "corrida de prueba", estado.Nombre)
	assert.Equal(t, 100, estado.Avance)
	assert.True(t, estado.Terminada)
	assert.False(t, estado.ConError)
}

func TestLanzar_TareaConError(t *testing.T) {
	e := NewEjecutor()

	id := e.Lanzar("corrida fallida", func(_ context.Context, _ func(int, string)) error {
		return errors.New("no hay registros")
	})

	estado := esperarTerminada(t, e, id)
	assert.True(t, estado.ConError)
	assert.Equal(t, "no hay registros", estado.Mensaje)
}

func TestLanzar_AvanceVisibleDuranteLaCorrida(t *testing.T) {
	e := NewEjecutor()
	paso := make(chan struct{})
	continuar := make(chan struct{})

	id := e.Lanzar("corrida lenta", func(_ context.Context, avance func(int, string)) error {
		avance(40, "construyendo")
		close(paso)
		<-continuar
		return nil
	})

	<-paso
	estado, ok := e.Estado(id)
	require.True(t, ok)
	assert.Equal(t, 40, estado.Avance)
	assert.Equal(t, "construyendo", estado.Mensaje)
	assert.False(t, estado.Terminada)

	close(continuar)
	esperarTerminada(t, e, id)
}

func TestEstado_TareaInexistente(t *testing.T) {
	e := NewEjecutor()
	_, ok := e.Estado("no-existe")
	assert.False(t, ok)
}
