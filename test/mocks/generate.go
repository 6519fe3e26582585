// test/mocks/generate.go
// Package mocks holds generated test doubles for the service ports.
package mocks

//go:generate mockgen -source=../../internal/core/ports/factory_service.go -destination=factory_service_mock.go -package=mocks
