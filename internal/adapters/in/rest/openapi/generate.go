package openapi

//go:generate go tool oapi-codegen -config cfg.yaml ../../../../app/docs/openapi.yaml
