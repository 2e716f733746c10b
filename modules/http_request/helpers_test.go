package http_request

import (
	"github.com/specialistvlad/compgrid/internal/registry"
	"github.com/specialistvlad/compgrid/modules/http_client"
)

func registryWithClient() *registry.Registry {
	r := registry.New()
	(&http_client.Module{}).Register(r)
	return r
}
