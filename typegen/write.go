package typegen

import (
	"os"
	"path/filepath"

	"github.com/teranos/xcsettings/errors"
)

// Render emits every target in memory. Nothing is written.
func Render(doc *Document, targets []Target) ([]Output, error) {
	outputs := make([]Output, 0, len(targets))
	for _, t := range targets {
		data, err := t.Emitter.Emit(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s output", t.Emitter.Name())
		}
		outputs = append(outputs, Output{Target: t, Data: data})
	}
	return outputs, nil
}

// WriteOutputs writes each rendered output with WriteFile.
func WriteOutputs(outputs []Output) error {
	for _, o := range outputs {
		if err := WriteFile(o.Path, o.Data); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile replaces path with data. The bytes go to a temporary file in the
// same directory, which is renamed over path only once fully written.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "failed to set permissions on %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	committed = true
	return nil
}
