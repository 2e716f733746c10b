package app

import (
	"io"

	"github.com/specialistvlad/compgrid/internal/registry"
	"github.com/specialistvlad/compgrid/modules/env_vars"
	"github.com/specialistvlad/compgrid/modules/healthcheck"
	"github.com/specialistvlad/compgrid/modules/http_client"
	"github.com/specialistvlad/compgrid/modules/http_request"
	"github.com/specialistvlad/compgrid/modules/print"
	"github.com/specialistvlad/compgrid/modules/s3"
	"github.com/specialistvlad/compgrid/modules/socketio_client"
	"github.com/specialistvlad/compgrid/modules/socketio_request"
	"github.com/specialistvlad/compgrid/modules/sqlite"
)

// CoreModules is the definitive list of all modules that are compiled into
// the compgrid binary. print writes to outW.
func CoreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		&env_vars.Module{},
		&print.Module{Out: outW},
		&http_client.Module{},
		&http_request.Module{},
		&s3.Module{},
		&socketio_client.Module{},
		&socketio_request.Module{},
		&sqlite.Module{},
		&healthcheck.Module{},
	}
}
