package generadores

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/storage"
	"github.com/PJECZ/pjecz-perseo-api/pkg/config"
)

// Manifiesto resumen de una corrida: el artefacto producido y sus advertencias.
type Manifiesto struct {
	Fuente          string
	Archivo         string
	URLPublica      string
	Advertencias    []string
	TotalFilas      int
	EsSatisfactorio bool
}

// Exportador corre un generador del catálogo contra una quincena abierta y
// produce el artefacto XLSX, su subida opcional a objetos y el manifiesto
// QuincenaProducto.
type Exportador struct {
	txRunner     TxRunner
	productoRepo repository.QuincenaProductoRepository
	escritor     EscritorTabular
	almacen      storage.Almacen // puede ser nil: sin subida
	catalogo     map[string]Generador
	cfg          config.NominaConfig
	dir          string
	reloj        func() time.Time
}

// NewExportador construye el caso de uso. almacen nil desactiva la subida.
func NewExportador(
	txRunner TxRunner,
	productoRepo repository.QuincenaProductoRepository,
	escritor EscritorTabular,
	almacen storage.Almacen,
	cfg config.NominaConfig,
	dirArtefactos string,
) *Exportador {
	return &Exportador{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		escritor:     escritor,
		almacen:      almacen,
		catalogo:     Catalogo(cfg),
		cfg:          cfg,
		dir:          dirArtefactos,
		reloj:        time.Now,
	}
}

// Exportar corre el generador fuente sobre la quincena clave. avance recibe el
// progreso (0-100 con mensaje); puede ser nil. Los errores de validación y de
// precondición abortan antes de cualquier mutación; las condiciones por
// renglón quedan como advertencias del manifiesto.
func (e *Exportador) Exportar(ctx context.Context, fuente, quincenaClave string, avance func(int, string)) (*Manifiesto, error) {
	if avance == nil {
		avance = func(int, string) {}
	}
	gen, ok := e.catalogo[fuente]
	if !ok {
		return nil, fmt.Errorf("%w: generador %q desconocido", domain.ErrInvalidInput, fuente)
	}

	avance(5, "validando la quincena")

	var (
		quincena  *entity.Quincena
		resultado *ResultadoCorrida
		archivo   string
		ruta      string
	)

	// Una corrida = una transacción: construcción de filas, consecutivos y
	// escritura del archivo local se confirman juntos. Si la escritura falla,
	// los contadores se revierten y no quedan cheques huérfanos.
	err := e.txRunner.RunGeneracion(ctx, func(
		quincenaRepo repository.QuincenaRepository,
		nominaRepo repository.NominaRepository,
		cuentaRepo repository.CuentaRepository,
		bancoRepo repository.BancoRepository,
	) error {
		var err error
		quincena, err = quincenas.ResolverAbiertaCon(ctx, quincenaRepo, quincenaClave)
		if err != nil {
			return err
		}

		if gen.ReiniciarConsecutivos {
			if err := bancoRepo.ReiniciarConsecutivosGenerados(ctx); err != nil {
				return fmt.Errorf("reiniciar consecutivos: %w", err)
			}
		}

		avance(20, "construyendo los renglones")
		resultado, err = construirFilas(ctx, gen, quincena, e.cfg.ClaveBancoMonedero, nominaRepo, cuentaRepo, bancoRepo)
		if err != nil {
			return err
		}

		avance(60, "escribiendo el artefacto")
		archivo = fmt.Sprintf("%s_%s_%s.xlsx", gen.NombreArchivo, quincenaClave, e.reloj().Format("2006-01-02_150405"))
		ruta = filepath.Join(e.dir, archivo)
		if err := e.escritor.Escribir(ruta, gen.Encabezado, resultado.Filas); err != nil {
			return fmt.Errorf("escribir %s: %w", archivo, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	advertencias := resultado.Advertencias

	urlPublica := ""
	if e.almacen != nil && e.almacen.Habilitado() {
		avance(80, "subiendo el artefacto")
		urlPublica, err = e.almacen.Subir(ctx, ruta, archivo)
		if err != nil {
			// El artefacto local es la fuente de verdad: la subida degrada a advertencia.
			log.Warn().Err(err).Str("archivo", archivo).Msg("subida a objetos fallida")
			advertencias = append(advertencias, fmt.Sprintf("subida a objetos fallida: %v", err))
			urlPublica = ""
		}
	}

	avance(90, "guardando el manifiesto")
	ahora := e.reloj()
	producto := &entity.QuincenaProducto{
		QuincenaID:      quincena.ID,
		Fuente:          gen.Fuente,
		Archivo:         archivo,
		URLPublica:      urlPublica,
		Mensajes:        strings.Join(advertencias, "\n"),
		EsSatisfactorio: len(advertencias) == 0,
		Estatus:         entity.EstatusActivo,
		CreadoEn:        ahora,
		ActualizadoEn:   ahora,
	}
	if err := e.productoRepo.Guardar(ctx, producto); err != nil {
		return nil, fmt.Errorf("guardar manifiesto: %w", err)
	}

	avance(100, "terminado")
	log.Info().
		Str("fuente", gen.Fuente).
		Str("quincena", quincenaClave).
		Int("filas", len(resultado.Filas)).
		Int("advertencias", len(advertencias)).
		Msg("artefacto generado")

	return &Manifiesto{
		Fuente:          gen.Fuente,
		Archivo:         archivo,
		URLPublica:      urlPublica,
		Advertencias:    advertencias,
		TotalFilas:      len(resultado.Filas),
		EsSatisfactorio: len(advertencias) == 0,
	}, nil
}

// Fuentes devuelve las claves de los generadores disponibles.
func (e *Exportador) Fuentes() []string {
	fuentes := make([]string, 0, len(e.catalogo))
	for fuente := range e.catalogo {
		fuentes = append(fuentes, fuente)
	}
	return fuentes
}
