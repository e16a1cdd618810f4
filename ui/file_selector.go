package ui

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"imgconv/config"
	"imgconv/formats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

type FileSelector struct {
	cwd    string
	files  []string
	cursor int
	status string
	cfg    config.Config
}

func CreateFileSelector(cfg config.Config) FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		log.Panic(err)
	}
	return FileSelector{
		cwd:   cwd,
		files: ReadConvertibleFiles(cwd),
		cfg:   cfg,
	}
}

// ReadConvertibleFiles lists the files in path whose extension maps to a
// supported container.
func ReadConvertibleFiles(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	names := lo.Map(
		entries,
		func(entry fs.DirEntry, _ int) string {
			return entry.Name()
		},
	)
	return lo.Filter(
		names,
		func(name string, _ int) bool {
			return formats.ByExtension(name) != nil
		},
	)
}

func (s FileSelector) convertSelection(extension string) FileSelector {
	if len(s.files) == 0 {
		s.status = "No convertible files in this directory"
		return s
	}

	from := filepath.Join(s.cwd, s.files[s.cursor])
	to := strings.TrimSuffix(from, filepath.Ext(from)) + "." + extension

	inFormat := formats.ByExtension(from)
	outFormat := formats.ByExtension(to)
	if jpegFormat, ok := outFormat.(formats.JPEG); ok {
		jpegFormat.Quality = s.cfg.JPEGQuality
		outFormat = jpegFormat
	}

	image, err := inFormat.Load(from)
	if err != nil {
		s.status = "Loading failed: " + s.files[s.cursor]
		return s
	}
	if err := outFormat.Save(to, image); err != nil {
		s.status = "Saving failed: " + filepath.Base(to)
		return s
	}
	s.status = "Converted to " + filepath.Base(to)
	s.files = ReadConvertibleFiles(s.cwd)
	return s
}

func (s FileSelector) View() string {
	output := "IMGCONV\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	if len(s.files) == 0 {
		output += "No convertible files found\n"
	}
	for index, name := range s.files {
		marker := "  "
		if index == s.cursor {
			marker = "> "
		}
		output += marker + name + "\n"
	}

	output += "\n[up/down] select  [b] to BMP  [p] to PPM  [j] to JPEG  [q] quit\n"
	if s.status != "" {
		output += fmt.Sprintf("\n%s\n", s.status)
	}
	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "b":
		return s.convertSelection("bmp"), nil
	case "p":
		return s.convertSelection("ppm"), nil
	case "j":
		return s.convertSelection("jpg"), nil
	}
	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}
