package grpcentropy

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/entropy/entropy"
)

// mapRPC converts status codes back into the library's error taxonomy where
// a stable mapping exists. Decode failures stay InvalidArgument status
// errors: the client re-decodes snapshot bytes locally, so the structured
// decode error surfaces from that path instead.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.ResourceExhausted:
		// Server uses ResourceExhausted when the generator cannot satisfy a
		// fill request.
		return entropy.WrapError(entropy.KindOutput, "ENT-OUT-001", st.Message(), err)
	default:
		return err
	}
}
