package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	manifestPath := flag.String("manifest", "", "Path to the string-constant manifest YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkgName := flag.String("package", "", "Package name for the generated file (overrides the manifest)")
	manifestOutput := flag.String("manifest-output", "", "Output path for the derived constants manifest")
	flag.Parse()

	if *manifestPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: cstr-gen -manifest <path> -output <path> [-package <name>] [-manifest-output <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*manifestPath, *outputPath, *pkgName, *manifestOutput); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestPath, outputPath, pkgName, manifestOutput string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	code, err := Generate(m, pkgName, filepath.Base(manifestPath))
	if err != nil {
		return fmt.Errorf("generating constants: %w", err)
	}

	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)

	if manifestOutput != "" {
		pkg, err := resolvePackage(m, pkgName)
		if err != nil {
			return err
		}
		if err := os.WriteFile(manifestOutput, []byte(DeriveManifest(m, pkg)), 0o644); err != nil {
			return fmt.Errorf("writing derived manifest: %w", err)
		}
		fmt.Printf("  generated %s\n", manifestOutput)
	}

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
