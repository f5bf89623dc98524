package fs

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/taskforge/taskforge/internal/core/domain"
	"github.com/taskforge/taskforge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InvocationHasher = (*Hasher)(nil)

// Hasher computes memoization keys for task invocations.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeInvocationHash computes a single hash covering the task's identity,
// the invocation arguments, the task environment and the content of declared
// auxiliary files. Two invocations collide on this key exactly when all of
// those agree, so the key is safe to use for result memoization.
func (h *Hasher) ComputeInvocationHash(spec domain.TaskSpec, args []any, kwargs map[string]any) (string, error) {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(spec.Identity)
	_, _ = hasher.Write([]byte{0})

	if err := h.hashArguments(args, kwargs, hasher); err != nil {
		return "", err
	}
	h.hashEnvironment(spec.Env, hasher)

	if err := h.hashAuxiliaryFiles(spec.AuxiliaryFiles, hasher); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashArguments hashes the positional and keyword arguments through their
// JSON encoding. An argument that does not serialize makes the invocation
// unhashable.
func (h *Hasher) hashArguments(args []any, kwargs map[string]any, hasher *xxhash.Digest) error {
	for i, arg := range args {
		data, err := json.Marshal(arg)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to serialize argument"), "index", i)
		}
		_, _ = hasher.Write(data)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	keys := make([]string, 0, len(kwargs))
	for k := range kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		data, err := json.Marshal(kwargs[k])
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to serialize keyword argument"), "key", k)
		}
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.Write(data)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	return nil
}

// hashEnvironment hashes environment variables in a deterministic order.
func (h *Hasher) hashEnvironment(env map[string]string, hasher *xxhash.Digest) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}

// hashAuxiliaryFiles hashes the content of the declared auxiliary paths,
// handling globs and directories.
func (h *Hasher) hashAuxiliaryFiles(paths []string, hasher *xxhash.Digest) error {
	for _, path := range paths {
		if err := h.hashAuxiliaryPath(path, hasher); err != nil {
			return err
		}
	}
	return nil
}

// hashAuxiliaryPath hashes a single path, attempting glob resolution if the
// path does not exist.
func (h *Hasher) hashAuxiliaryPath(path string, hasher *xxhash.Digest) error {
	if _, err := os.Stat(path); err != nil {
		return h.tryGlobAndHash(path, hasher)
	}
	return h.hashPath(path, hasher)
}

// tryGlobAndHash attempts to resolve a path as a glob pattern and hash all matches.
func (h *Hasher) tryGlobAndHash(path string, hasher *xxhash.Digest) error {
	matches, globErr := filepath.Glob(path)
	if globErr == nil && len(matches) > 0 {
		for _, match := range matches {
			if err := h.hashPath(match, hasher); err != nil {
				return err
			}
		}
		return nil
	}
	// If not a glob or no matches, the declared input is missing
	return zerr.With(domain.ErrAuxiliaryInputMissing, "path", path)
}

func (h *Hasher) hashPath(path string, mainHasher io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	if info.IsDir() {
		for filePath := range h.walker.WalkFiles(path, nil) {
			if err := h.hashFile(filePath, mainHasher); err != nil {
				return err
			}
		}
		return nil
	}
	return h.hashFile(path, mainHasher)
}

func (h *Hasher) hashFile(path string, mainHasher io.Writer) error {
	_, _ = mainHasher.Write([]byte(path))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := h.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
