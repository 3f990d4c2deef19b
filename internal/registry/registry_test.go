package registry

import (
	"context"
	"errors"
	"testing"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }
func (s *stubFrontend) Run(ctx context.Context, opts RunOptions) error {
	s.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered frontends should exist")
	}

	infos := List()
	var ids []string
	for _, info := range infos {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			ia = i
		case "stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, want stub-a before stub-b", ids)
	}
	if infos[ia].Title != "Stub stub-a" {
		t.Errorf("title = %q, want %q", infos[ia].Title, "Stub stub-a")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := f.Run(context.Background(), RunOptions{}); err != nil {
		t.Errorf("Run() error: %v", err)
	}
	if !f.(*stubFrontend).ran {
		t.Error("Create should return a working instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Create() error = %v, want ErrUnknownFrontend", err)
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() = true for unknown frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}
