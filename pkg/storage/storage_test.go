package storage_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/hyrahs/shopstore-api/pkg/storage"
)

// stubDisk is a minimal in-memory Disk.
type stubDisk struct {
	files map[string][]byte
}

func newStubDisk() *stubDisk { return &stubDisk{files: map[string][]byte{}} }

func (d *stubDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *stubDisk) PutStream(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = data
	return nil
}

func (d *stubDisk) GetStream(path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(d.files[path])), nil
}

func (d *stubDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *stubDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func (d *stubDisk) URL(path string) string { return "/stub/" + path }

func TestRegisterAndUse(t *testing.T) {
	disk := newStubDisk()
	storage.Register("stub", disk)

	got, err := storage.Use("stub")
	if err != nil {
		t.Fatalf("Use(stub): %v", err)
	}

	if err := got.Put("a.txt", []byte("hello")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !disk.Exists("a.txt") {
		t.Error("write through Use should land on the registered disk")
	}
	if url := got.URL("a.txt"); url != "/stub/a.txt" {
		t.Errorf("URL = %q", url)
	}
}

func TestUseUnknownDisk(t *testing.T) {
	if _, err := storage.Use("definitely-not-configured"); err == nil {
		t.Error("expected an error for an unregistered disk name")
	}
}
