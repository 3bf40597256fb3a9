/*
Copyright © 2026 crabcode

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fixedstr

import (
	"fmt"
	"io"
	"os"

	base58 "github.com/jbenet/go-base58"
	"github.com/spf13/cobra"

	"github.com/crabcode/fixed-str/pkg/fixedstr"
)

const (
	formatText   = "text"
	formatHex    = "hex"
	formatBase58 = "base58"
)

func dumpCmd() *cobra.Command {

	var width int
	var format string
	var maxRecords int

	cmd := &cobra.Command{
		Use:   "dump --width <bytes> <file>",
		Short: "Render fixed-width string records from a file",
		Long: `
The dump command splits the given file into records of --width bytes
and renders each record on its own line.

Formats:
  text    effective content up to the null terminator (default)
  hex     full record storage as uppercase hex, padding included
  base58  full record storage as base58, a compact form for logs

Records whose content is not valid null-padded UTF-8 are marked
invalid together with the reason. A trailing partial record is
reported but not rendered.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 1 {
				return fmt.Errorf("width must be at least one byte")
			}
			switch format {
			case formatText, formatHex, formatBase58:
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			return dumpRecords(cmd.OutOrStdout(), data, width, format, maxRecords)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Record width in bytes")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, hex or base58")
	cmd.Flags().IntVarP(&maxRecords, "max-records", "n", 0, "Stop after this many records, 0 means all")
	cmd.MarkFlagRequired("width")

	return cmd
}

func dumpRecords(w io.Writer, data []byte, width int, format string, maxRecords int) error {
	records := len(data) / width
	if maxRecords > 0 && records > maxRecords {
		records = maxRecords
	}

	for i := 0; i < records; i++ {
		raw := data[i*width : (i+1)*width]

		s, err := fixedstr.StrFromBytes(raw)
		if err != nil {
			fmt.Fprintf(w, "%6d  invalid: %v\n", i, err)
			continue
		}

		switch format {
		case formatText:
			fmt.Fprintf(w, "%6d  %s\n", i, s.String())
		case formatHex:
			fmt.Fprintf(w, "%6d  %s\n", i, s.Hex())
		case formatBase58:
			fmt.Fprintf(w, "%6d  %s\n", i, base58.Encode(s.RawBytes()))
		}
	}

	if rest := len(data) % width; rest != 0 && (maxRecords <= 0 || records < maxRecords) {
		fmt.Fprintf(w, "%6d  partial record, %d of %d bytes\n", records, rest, width)
	}

	return nil
}
