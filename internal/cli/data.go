package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/corpusling/connalign"
	"github.com/corpusling/connalign/lexicon"
	"github.com/spf13/cobra"
)

const (
	dimlexURL  = "https://raw.githubusercontent.com/discourse-lab/dimlex/master/DimLex.xml"
	lexconnURL = "http://www.linguist.univ-paris-diderot.fr/~croze/D/Lexconn.xml"
)

func (c *CLI) newDataCommand() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Manage the connective lexicons",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var lexiconDir string
	var deURL, frURL string
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download the DimLex and LexConn lexicons",
		Example: `  connalign data download
  connalign data download --lexicon-dir lexicons`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dataDownload(lexiconDir, deURL, frURL)
		},
	}
	downloadCmd.Flags().StringVar(&lexiconDir, "lexicon-dir", "lexicons", "Destination folder for the lexicons")
	downloadCmd.Flags().StringVar(&deURL, "dimlex-url", dimlexURL, "Source URL for the German lexicon")
	downloadCmd.Flags().StringVar(&frURL, "lexconn-url", lexconnURL, "Source URL for the French lexicon")

	dataCmd.AddCommand(downloadCmd)
	return dataCmd
}

func dataDownload(dir, deURL, frURL string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	dePath := filepath.Join(dir, connalign.DimLexFile)
	frPath := filepath.Join(dir, connalign.LexConnFile)
	if err := downloadFile(deURL, dePath); err != nil {
		return err
	}
	if err := downloadFile(frURL, frPath); err != nil {
		return err
	}

	// Parse both right away so a broken download fails here, not in
	// the middle of a run.
	de, err := lexicon.ReadDimLexFile(dePath)
	if err != nil {
		return err
	}
	fr, err := lexicon.ReadLexConnFile(frPath)
	if err != nil {
		return err
	}
	slog.Info("Lexicons ready", "german", len(de.Forms), "french", len(fr.Forms), "folder", dir)
	return nil
}

func downloadFile(url, dest string) error {
	slog.Info("Downloading", "url", url)
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: HTTP %d", url, resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	written, err := io.Copy(f, resp.Body)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("write %s: %w", dest, err)
	}
	_ = f.Close()

	slog.Info("Saved", "dest", dest, "size", fmt.Sprintf("%.1fKB", float64(written)/1024))
	return nil
}
