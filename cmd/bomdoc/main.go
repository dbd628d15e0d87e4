// Command bomdoc is the CLI tool for BOM-prefixed text documents.
// It detects, decodes, encodes and converts self-describing text files and
// manages a small content-addressed document store.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/bomdoc/core/bom"
	"github.com/FocuswithJustin/bomdoc/core/codec"
	"github.com/FocuswithJustin/bomdoc/core/document"
	"github.com/FocuswithJustin/bomdoc/internal/archive"
	"github.com/FocuswithJustin/bomdoc/internal/logging"
	"github.com/FocuswithJustin/bomdoc/internal/store"
)

const version = "0.1.0"

// CLI defines the command-line interface for bomdoc.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info"`
	LogFormat string `name:"log-format" help:"Log format (json, text)" default:"json"`

	Detect     DetectCmd     `cmd:"" help:"Detect the encoding of a BOM-prefixed file"`
	Decode     DecodeCmd     `cmd:"" help:"Decode a BOM-prefixed file to plain text"`
	Encode     EncodeCmd     `cmd:"" help:"Encode a plain UTF-8 text file into a BOM-prefixed file"`
	Convert    ConvertCmd    `cmd:"" help:"Re-encode a BOM-prefixed file into another encoding"`
	Lines      LinesCmd      `cmd:"" help:"Print the line view of a BOM-prefixed file"`
	Codepoints CodepointsCmd `cmd:"" help:"Print the code point view of a BOM-prefixed file"`
	Doc        DocGroup      `cmd:"" help:"Document store operations (ingest, list, get, export, delete)"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// DocGroup contains document store operations.
type DocGroup struct {
	StoreDir string `name:"store-dir" help:"Document store directory" default:"./bomdoc-store" type:"path"`

	Ingest DocIngestCmd `cmd:"" help:"Ingest a BOM-prefixed file into the store"`
	List   DocListCmd   `cmd:"" help:"List stored documents"`
	Get    DocGetCmd    `cmd:"" help:"Print a stored document as plain text"`
	Export DocExportCmd `cmd:"" help:"Export a stored document's encoded bytes"`
	Delete DocDeleteCmd `cmd:"" help:"Remove a document from the catalog"`
}

// DetectCmd detects the encoding of a file.
type DetectCmd struct {
	Path string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
}

func (c *DetectCmd) Run() error {
	data, err := readMaybeXZ(c.Path)
	if err != nil {
		return err
	}
	enc, err := codec.DetectEncoding(data)
	if err != nil {
		return err
	}
	fmt.Println(enc)
	return nil
}

// DecodeCmd decodes a file to plain text on stdout.
type DecodeCmd struct {
	Path string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
	JSON bool   `help:"Emit a JSON envelope with encoding metadata"`
}

func (c *DecodeCmd) Run() error {
	doc, err := loadDocument(c.Path)
	if err != nil {
		return err
	}
	logging.DocumentEvent("decode", doc.Encoding().String(), len(doc.Bytes()), "path", c.Path)

	if c.JSON {
		envelope := struct {
			Encoding   string `json:"encoding"`
			Text       string `json:"text"`
			Lines      int    `json:"lines"`
			CodePoints int    `json:"code_points"`
		}{
			Encoding:   doc.Encoding().String(),
			Text:       doc.Text(),
			Lines:      len(doc.Lines()),
			CodePoints: len(doc.CodePoints()),
		}
		out, err := json.MarshalIndent(envelope, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(doc.Text())
	return nil
}

// EncodeCmd encodes a plain text file into a BOM-prefixed file.
type EncodeCmd struct {
	Path     string `arg:"" help:"Path to plain UTF-8 text file" type:"existingfile"`
	Encoding string `help:"Target encoding (utf-8, utf-16be, utf-16le, utf-32be)" default:"utf-8"`
	Out      string `help:"Output path (required)" required:""`
}

func (c *EncodeCmd) Run() error {
	enc, err := bom.ParseEncoding(c.Encoding)
	if err != nil {
		return err
	}
	return encodeFile(c.Path, c.Out, enc)
}

// ConvertCmd re-encodes a BOM-prefixed file into another encoding.
type ConvertCmd struct {
	Path string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
	To   string `help:"Target encoding (required)" required:""`
	Out  string `help:"Output path (required)" required:""`
}

func (c *ConvertCmd) Run() error {
	enc, err := bom.ParseEncoding(c.To)
	if err != nil {
		return err
	}
	return convertFile(c.Path, c.Out, enc)
}

// LinesCmd prints the line-oriented view of a file.
type LinesCmd struct {
	Path string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
}

func (c *LinesCmd) Run() error {
	doc, err := loadDocument(c.Path)
	if err != nil {
		return err
	}
	for i, line := range doc.Lines() {
		fmt.Printf("%4d  %s\n", i+1, line)
	}
	return nil
}

// CodepointsCmd prints the code-point view of a file.
type CodepointsCmd struct {
	Path string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
}

func (c *CodepointsCmd) Run() error {
	doc, err := loadDocument(c.Path)
	if err != nil {
		return err
	}
	for _, cp := range doc.CodePoints() {
		fmt.Printf("%U\n", cp)
	}
	return nil
}

// DocIngestCmd ingests a file into the document store.
type DocIngestCmd struct {
	Path  string `arg:"" help:"Path to BOM-prefixed file" type:"existingfile"`
	Title string `help:"Catalog title (defaults to the file name)"`
}

func (c *DocIngestCmd) Run() error {
	doc, err := loadDocument(c.Path)
	if err != nil {
		return err
	}

	title := c.Title
	if title == "" {
		title = filepath.Base(c.Path)
	}

	s, err := store.Open(CLI.Doc.StoreDir)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Ingest(doc, title)
	if err != nil {
		return err
	}
	logging.StoreEvent("ingest", rec.ID, "title", rec.Title, "encoding", rec.Encoding.String())
	fmt.Printf("%s  %s  %s  %d bytes\n", rec.ID, rec.Encoding, rec.Title, rec.SizeBytes)
	return nil
}

// DocListCmd lists stored documents.
type DocListCmd struct{}

func (c *DocListCmd) Run() error {
	s, err := store.Open(CLI.Doc.StoreDir)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no documents")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s  %-9s  %8d bytes  %s  %s\n",
			rec.ID, rec.Encoding, rec.SizeBytes, rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Title)
	}
	return nil
}

// DocGetCmd prints a stored document's text.
type DocGetCmd struct {
	ID string `arg:"" help:"Document id"`
}

func (c *DocGetCmd) Run() error {
	s, err := store.Open(CLI.Doc.StoreDir)
	if err != nil {
		return err
	}
	defer s.Close()

	_, doc, err := s.Get(c.ID)
	if err != nil {
		return err
	}
	fmt.Print(doc.Text())
	return nil
}

// DocExportCmd writes a stored document's encoded bytes to a file.
type DocExportCmd struct {
	ID  string `arg:"" help:"Document id"`
	Out string `help:"Output path (required)" required:""`
	XZ  bool   `help:"Compress the output with xz"`
}

func (c *DocExportCmd) Run() error {
	s, err := store.Open(CLI.Doc.StoreDir)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.Bytes(c.ID)
	if err != nil {
		return err
	}

	if c.XZ {
		if err := archive.ExportXZ(c.Out, data); err != nil {
			return err
		}
	} else if err := os.WriteFile(c.Out, data, 0644); err != nil {
		return err
	}
	logging.StoreEvent("export", c.ID, "out", c.Out, "xz", c.XZ)
	return nil
}

// DocDeleteCmd removes a document from the catalog.
type DocDeleteCmd struct {
	ID string `arg:"" help:"Document id"`
}

func (c *DocDeleteCmd) Run() error {
	s, err := store.Open(CLI.Doc.StoreDir)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(c.ID); err != nil {
		return err
	}
	logging.StoreEvent("delete", c.ID)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("bomdoc version %s (sqlite driver: %s)\n", version, store.DriverType())
	return nil
}

// Helper functions

// readMaybeXZ reads a file, transparently decompressing xz-compressed
// exports so every file command accepts both forms.
func readMaybeXZ(path string) ([]byte, error) {
	if archive.IsXZ(path) {
		return archive.ImportXZ(path)
	}
	return os.ReadFile(path)
}

// loadDocument reads a BOM-prefixed (optionally xz-compressed) file and
// decodes it into a document.
func loadDocument(path string) (*document.Document, error) {
	data, err := readMaybeXZ(path)
	if err != nil {
		return nil, err
	}
	doc, err := document.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// encodeFile reads plain UTF-8 text and writes it as a BOM-prefixed file.
// A leading U+FEFF in the input is treated as an accidental BOM and
// stripped rather than doubled into the payload.
func encodeFile(inPath, outPath string, enc bom.Encoding) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	text := strings.TrimPrefix(string(raw), "\uFEFF")

	doc := document.NewWith(text, enc)
	data := doc.Bytes()
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}
	logging.DocumentEvent("encode", enc.String(), len(data), "in", inPath, "out", outPath)
	return nil
}

// convertFile decodes a BOM-prefixed file and re-encodes it in another
// encoding. The text is unchanged; only the serialization differs.
func convertFile(inPath, outPath string, to bom.Encoding) error {
	doc, err := loadDocument(inPath)
	if err != nil {
		return err
	}
	from := doc.Encoding()
	doc.SetEncoding(to)

	data := doc.Bytes()
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}
	logging.DocumentEvent("convert", to.String(), len(data), "from", from.String(), "in", inPath, "out", outPath)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bomdoc"),
		kong.Description("bomdoc - self-describing BOM-prefixed text documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
