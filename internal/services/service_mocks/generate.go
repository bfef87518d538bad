// Package service_mocks contains generated mocks for the service interfaces.
//
//go:generate mockgen -source=../interfaces.go -destination=mocks.go -package=service_mocks
package service_mocks
