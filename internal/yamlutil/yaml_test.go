package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-web2md/internal/yamlutil"
)

type doc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var d doc
	if err := yamlutil.UnmarshalStrict([]byte("name: web2md\ncount: 3\n"), &d); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if d.Name != "web2md" || d.Count != 3 {
		t.Errorf("UnmarshalStrict() = %+v", d)
	}

	if err := yamlutil.UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &d); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestUnmarshalStrictValidation(t *testing.T) {
	t.Parallel()

	var d doc

	if err := yamlutil.UnmarshalStrict(nil, &d); !errors.Is(err, yamlutil.ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}

	if err := yamlutil.UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("expected ErrNilDestination, got %v", err)
	}

	big := []byte(strings.Repeat("a", yamlutil.MaxInputSize+1))
	if err := yamlutil.UnmarshalStrict(big, &d); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("expected ErrInputTooLarge, got %v", err)
	}
}
