package edgelist

import (
	"strings"

	"simnet/internal/network"
	"simnet/internal/textutil"
)

const (
	edgeListExt = ".txt"
	datasetExt  = ".tsv"
)

// BaseName joins the sanitized dataset and fingerprint labels.
func BaseName(dataset, fingerprint string) string {
	return textutil.SanitizeToken(dataset) + "_" + textutil.SanitizeToken(fingerprint)
}

// FileName names the edge list for one model and parameter, for example
// "bcb_author_cosine_0.7.txt" or "bcb_author_exact.txt".
func FileName(dataset, fingerprint string, model network.Model, param float64) string {
	parts := []string{BaseName(dataset, fingerprint), textutil.SanitizeToken(string(model))}
	if formatted := model.FormatParameter(param); formatted != "" {
		parts = append(parts, textutil.SanitizeToken(formatted))
	}
	return strings.Join(parts, "_") + edgeListExt
}

// DatasetFileName names the id/text dump written alongside the edge lists.
func DatasetFileName(dataset, fingerprint string) string {
	return BaseName(dataset, fingerprint) + "_dataset" + datasetExt
}
