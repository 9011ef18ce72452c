package storage

import "context"

// Almacen sube artefactos a un almacenamiento de objetos. El artefacto local
// es siempre la fuente de verdad: una falla de subida degrada a advertencia,
// nunca tira la corrida.
type Almacen interface {
	// Habilitado indica si hay bucket configurado.
	Habilitado() bool
	// Subir coloca el archivo local en el bucket y devuelve la URL pública.
	Subir(ctx context.Context, rutaLocal, nombreObjeto string) (string, error)
}
