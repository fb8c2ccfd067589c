package models

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// DummyAgent is a lightweight in-memory Agent useful for local testing without
// API calls. Uploads are kept in a map keyed by resource name; nothing leaves
// the process.
type DummyAgent struct {
	Reply string

	files map[string]*RemoteFile
	seq   int
}

func NewDummyAgent(reply string) *DummyAgent {
	if strings.TrimSpace(reply) == "" {
		reply = "Dummy analysis:"
	}
	return &DummyAgent{Reply: reply, files: make(map[string]*RemoteFile)}
}

func (d *DummyAgent) UploadFile(_ context.Context, path, displayName string) (*RemoteFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	d.seq++
	f := &RemoteFile{
		Name:        fmt.Sprintf("files/dummy-%d", d.seq),
		DisplayName: displayName,
		MIMEType:    DetectMIME(path),
		URI:         "dummy://" + path,
		SizeBytes:   info.Size(),
		CreateTime:  time.Now().UTC(),
		State:       "ACTIVE",
	}
	d.files[f.Name] = f
	return f, nil
}

func (d *DummyAgent) GenerateWithFile(_ context.Context, prompt string, file *RemoteFile) (string, error) {
	if file == nil {
		return fmt.Sprintf("%s %s", d.Reply, prompt), nil
	}
	return fmt.Sprintf("%s %s [%s]", d.Reply, prompt, file.DisplayName), nil
}

func (d *DummyAgent) GetFile(_ context.Context, name string) (*RemoteFile, error) {
	f, ok := d.files[name]
	if !ok {
		return nil, fmt.Errorf("dummy: no such file %q", name)
	}
	cp := *f
	return &cp, nil
}

func (d *DummyAgent) DeleteFile(_ context.Context, name string) error {
	if _, ok := d.files[name]; !ok {
		return fmt.Errorf("dummy: no such file %q", name)
	}
	delete(d.files, name)
	return nil
}

func (d *DummyAgent) ListFiles(_ context.Context) ([]*RemoteFile, error) {
	out := make([]*RemoteFile, 0, len(d.files))
	for _, f := range d.files {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ Agent = (*DummyAgent)(nil)
