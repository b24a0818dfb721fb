package usecase

import "errors"

// ErrExportUnavailable no hay exportador configurado.
var ErrExportUnavailable = errors.New("export indisponible")
