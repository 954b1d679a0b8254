// Package dedupe contains the pure grouping logic of the pipeline: filtering
// a scanned inventory down to logical names with more than one version,
// selecting the latest version per name, and rendering the duplicate report.
package dedupe
