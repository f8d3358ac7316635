package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"simnet/internal/logging"
	"simnet/internal/textutil"
)

// FingerprintKind selects what text the extractor keeps for each file.
type FingerprintKind string

const (
	// FingerprintAuthor keeps the @author tag values.
	FingerprintAuthor FingerprintKind = "author"
	// FingerprintComments keeps the normalized body of every comment.
	FingerprintComments FingerprintKind = "comments"
)

// ErrUnknownFingerprint indicates an unsupported fingerprint kind.
var ErrUnknownFingerprint = errors.New("corpus: unknown fingerprint kind")

// ParseFingerprintKind maps a config or flag value onto a FingerprintKind.
func ParseFingerprintKind(value string) (FingerprintKind, error) {
	switch kind := FingerprintKind(strings.ToLower(strings.TrimSpace(value))); kind {
	case FingerprintAuthor, FingerprintComments:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFingerprint, value)
	}
}

var (
	packagePattern = regexp.MustCompile(`(?m)^\s*package\s+([\w.]+)\s*;`)
	typePattern    = regexp.MustCompile(`\b(?:class|interface|enum|record)\s+([A-Za-z_$][\w$]*)`)
	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)
	authorPattern  = regexp.MustCompile(`@author\s+([^\n\r*]*)`)
)

// Extractor walks a source tree and fingerprints every matching file.
type Extractor struct {
	Dataset    string
	Kind       FingerprintKind
	Extensions []string
	Overrides  *OverrideTable
	Logger     *slog.Logger
}

// Extract returns one document per source file under root, in lexical path
// order. When two files resolve to the same canonical id the first one wins
// and the later one is skipped with a warning.
func (e *Extractor) Extract(ctx context.Context, root string) ([]Document, error) {
	logger := logging.NewComponentLogger(e.Logger, "extractor")
	kind := e.Kind
	if kind == "" {
		kind = FingerprintAuthor
	}
	exts := normalizeExtensions(e.Extensions)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus root %s is not a directory", root)
	}

	var docs []Document
	seen := make(map[string]string)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !matchesExtension(path, exts) {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		doc := ParseSource(path, string(src), kind)
		if first, dup := seen[doc.ID]; dup {
			logging.WarnWithContext(logger, "duplicate canonical id; skipping file", "extract_duplicate_id",
				logging.String("id", doc.ID),
				logging.String("path", path),
				logging.String("kept", first),
				logging.String(logging.FieldImpact, "file excluded from the network"),
			)
			return nil
		}
		seen[doc.ID] = path
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk corpus root: %w", walkErr)
	}

	if applied := e.Overrides.Apply(e.Dataset, docs); applied > 0 {
		logger.Info("applied fingerprint overrides", logging.String(logging.FieldDataset, e.Dataset), logging.Int("count", applied))
	}
	logger.Debug("extraction complete",
		logging.String(logging.FieldDataset, e.Dataset),
		logging.String("fingerprint", string(kind)),
		logging.Int("documents", len(docs)),
	)
	return docs, nil
}

// ParseSource derives the canonical id and fingerprint of one source file.
// The id is the declared package joined with the primary type name; the
// primary type is the declared type matching the file stem, else the first
// declared type, else the stem itself.
func ParseSource(path, src string, kind FingerprintKind) Document {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	code := commentPattern.ReplaceAllString(src, " ")

	name := stem
	if types := typePattern.FindAllStringSubmatch(code, -1); len(types) > 0 {
		name = types[0][1]
		for _, m := range types {
			if m[1] == stem {
				name = stem
				break
			}
		}
	}
	id := name
	if m := packagePattern.FindStringSubmatch(code); m != nil {
		id = m[1] + "." + name
	}

	var text string
	switch kind {
	case FingerprintComments:
		text = commentText(src)
	default:
		text = authorText(src)
	}
	return Document{ID: id, Text: text}
}

func authorText(src string) string {
	matches := authorPattern.FindAllStringSubmatch(src, -1)
	authors := make([]string, 0, len(matches))
	for _, m := range matches {
		if author := textutil.CollapseWhitespace(m[1]); author != "" {
			authors = append(authors, author)
		}
	}
	return strings.Join(authors, " ")
}

func commentText(src string) string {
	comments := commentPattern.FindAllString(src, -1)
	if len(comments) == 0 {
		return ""
	}
	return textutil.NormalizeComment(strings.Join(comments, " "))
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return []string{".java"}
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func matchesExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
