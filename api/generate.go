// Package api holds the reservation service contract and the code protoc
// generates from it.
package api

//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative ../api/reservation.proto
