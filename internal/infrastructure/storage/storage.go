// Package storage implementa el guardado de imágenes de producto.
// La validación de tipo y tamaño NO vive aquí: ocurre en la capa HTTP antes
// de cualquier escritura; los stores solo persisten bytes ya aceptados.
package storage

import "context"

// ImageStore es el puerto de almacenamiento de imágenes. Save devuelve la URL
// pública con la que se persiste el producto (image_url).
type ImageStore interface {
	Save(ctx context.Context, originalFilename, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, imageURL string) error
}
