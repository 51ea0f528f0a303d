package ctxutil

import (
	"context"
	"testing"
)

func TestRequestDataRoundTrip(t *testing.T) {
	ctx := WithRequestData(context.Background(), &RequestData{UserID: "user_1"})
	if got := UserID(ctx); got != "user_1" {
		t.Fatalf("UserID: got=%q want=%q", got, "user_1")
	}
	if got := UserID(context.Background()); got != "" {
		t.Fatalf("UserID on empty ctx: got=%q", got)
	}
	if Default(nil) == nil {
		t.Fatalf("Default(nil) returned nil")
	}
}
