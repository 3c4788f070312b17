// Package authv1 holds the protobuf contract of the tokenkeeper AuthService
// and the code protoc generates from it.
package authv1

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative internal/api/authv1/auth.proto
