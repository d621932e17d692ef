// Package uliddv1 defines the ulidd.v1.IDService gRPC contract. Messages are
// protobuf well-known types (Empty, StringValue, UInt64Value, BoolValue,
// Struct, ListValue), so the service descriptor is written by hand and no
// code generation step is needed.
package uliddv1
