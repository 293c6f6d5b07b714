// SPDX-License-Identifier: MIT

package network

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperreach/internal/archive"
)

// Datasets names the published code-review networks.
var Datasets = []string{"microsoft", "spotify", "trivago"}

// Load reads the network stored at path. The compression follows the
// extension; the name defaults to the base name without extensions.
func Load(path string, opts ...Option) (*CommunicationNetwork, error) {
	rc, err := archive.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load network")
	}
	defer rc.Close()

	opts = append([]Option{WithName(archive.Trim(path, ".json"))}, opts...)
	n, err := Decode(rc, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load network %s", path)
	}

	return n, nil
}

// Save writes n to path in the JSON format, compressed by extension.
func Save(path string, n *CommunicationNetwork) (err error) {
	wc, err := archive.Create(path)
	if err != nil {
		return errors.Wrap(err, "save network")
	}
	defer func() {
		if cerr := wc.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "save network")
		}
	}()

	return Encode(wc, n)
}

// DatasetPath returns dir/<name>.json.bz2 for a known dataset name.
func DatasetPath(dir, name string) (string, error) {
	for _, d := range Datasets {
		if d == name {
			return filepath.Join(dir, name+".json.bz2"), nil
		}
	}

	return "", errors.Wrapf(ErrUnknownDataset, "%q", name)
}

// LoadDataset loads a named dataset from dir.
func LoadDataset(dir, name string, opts ...Option) (*CommunicationNetwork, error) {
	path, err := DatasetPath(dir, name)
	if err != nil {
		return nil, err
	}

	return Load(path, append(opts, WithName(name))...)
}
