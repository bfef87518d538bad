package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=mocks.go -package=repository_mocks
