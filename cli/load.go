package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tuannh982/strhash/hashtable"
	"github.com/tuannh982/strhash/utils/collections"

	log "github.com/sirupsen/logrus"
)

type Entry struct {
	Key   string
	Value string
}

// ParseEntries reads key=value lines. Blank lines and lines starting with '#'
// are skipped; everything after the first '=' is the value. Every malformed
// line is reported, not just the first one.
func ParseEntries(r io.Reader) ([]Entry, error) {
	entries := make([]Entry, 0)
	var result *multierror.Error
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			result = multierror.Append(result, errors.Errorf("line %d: missing '='", lineNo))
			continue
		}
		entries = append(entries, Entry{Key: line[:idx], Value: line[idx+1:]})
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "scan"))
	}
	return entries, result.ErrorOrNil()
}

// ParseYAMLEntries reads a single YAML mapping of scalar keys to scalar values,
// keeping document order.
func ParseYAMLEntries(b []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if len(doc.Content) == 0 {
		return []Entry{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: expected a mapping", root.Line)
	}
	entries := make([]Entry, 0, len(root.Content)/2)
	var result *multierror.Error
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			result = multierror.Append(result, errors.Errorf("line %d: key and value must be scalars", k.Line))
			continue
		}
		entries = append(entries, Entry{Key: k.Value, Value: v.Value})
	}
	return entries, result.ErrorOrNil()
}

func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		entries, err := ParseYAMLEntries(b)
		return entries, errors.Wrapf(err, "parse %s", path)
	default:
		entries, err := ParseEntries(f)
		return entries, errors.Wrapf(err, "parse %s", path)
	}
}

// Load upserts entries into m in order and returns the keys that were seen
// more than once.
func Load(m collections.Map[string, string], entries []Entry, logger *log.Entry) ([]string, error) {
	seen := collections.NewStringSet()
	dups := make([]string, 0)
	for i, e := range entries {
		if err := seen.Add(e.Key); err != nil {
			logger.WithField("key", e.Key).Debug("duplicate key overwritten")
			dups = append(dups, e.Key)
		}
		if err := m.Set(e.Key, e.Value); err != nil {
			return dups, errors.Wrapf(err, "entry %d", i+1)
		}
	}
	return dups, nil
}

func newLoadCommand(a *app) *cobra.Command {
	var gets []string
	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load key=value lines or a YAML mapping and look keys up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := ReadEntries(args[0])
			if err != nil {
				return err
			}
			table, alloc, err := a.cfg.NewTable(a.tableLogger())
			if err != nil {
				return err
			}
			defer func() {
				table.Destroy()
				a.log.WithFields(log.Fields{
					"live_entries": alloc.Outstanding(hashtable.KindEntry),
					"live_keys":    alloc.Outstanding(hashtable.KindKey),
				}).Debug("table released")
			}()
			dups, err := Load(table, entries, a.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			s := table.Stats()
			fmt.Fprintf(out, "entries=%d duplicates=%d buckets=%d used=%d longest=%d ideal=%d load=%.2f\n",
				s.Entries, len(dups), s.Buckets, s.UsedBuckets, s.LongestChain, s.IdealChain, s.LoadFactor)
			var result *multierror.Error
			for _, key := range gets {
				v, err := table.Get(key)
				if err != nil {
					result = multierror.Append(result, err)
					continue
				}
				fmt.Fprintf(out, "%s=%s\n", key, v)
			}
			return result.ErrorOrNil()
		},
	}
	cmd.Flags().StringArrayVar(&gets, "get", nil, "key to look up after loading, repeatable")
	return cmd
}
