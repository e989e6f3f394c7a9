package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "github.com", "/trending/go")
	h.OnResponse(ctx, "GET", "github.com", "/trending/go", 200, time.Second)
	h.OnError(ctx, "GET", "github.com", "/trending/go", errors.New("dial tcp: timeout"))

	e := NoopExtractHooks{}
	e.OnExtract(ctx, 25, 25)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}
	if _, ok := Extract().(NoopExtractHooks); !ok {
		t.Error("Extract() should return NoopExtractHooks by default")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	customExtract := &testExtractHooks{}
	SetExtractHooks(customExtract)
	if Extract() != customExtract {
		t.Error("SetExtractHooks should set custom hooks")
	}

	Reset()
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
	if _, ok := Extract().(NoopExtractHooks); !ok {
		t.Error("Reset() should restore NoopExtractHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testHTTPHooks{}
	SetHTTPHooks(custom)

	// Setting nil should be ignored
	SetHTTPHooks(nil)
	SetExtractHooks(nil)

	if HTTP() != custom {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}
	if _, ok := Extract().(NoopExtractHooks); !ok {
		t.Error("SetExtractHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testHTTPHooks struct{ NoopHTTPHooks }
type testExtractHooks struct{ NoopExtractHooks }
