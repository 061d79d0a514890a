// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Crystalline color palette - ice blues and prism violets
var (
	ColorIceBright  = lipgloss.Color("#9BE8FF") // Bright ice - highlights
	ColorIcePrimary = lipgloss.Color("#58C9F0") // Primary ice - main brand color
	ColorPrism      = lipgloss.Color("#9D7BEA") // Prism violet - accents
	ColorFacet      = lipgloss.Color("#3E7CA6") // Facet blue - borders
	ColorSuccess    = lipgloss.Color("#7BE8A0") // Mint for success
	ColorWarning    = lipgloss.Color("#F4D03F") // Gold/amber for warnings
	ColorError      = lipgloss.Color("#E74C3C") // Red for errors
	ColorMuted      = lipgloss.Color("#4A5C6B") // Slate for muted text
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorIceBright),
	Label:   lipgloss.NewStyle().Foreground(ColorMuted),
	Value:   lipgloss.NewStyle().Foreground(ColorIcePrimary),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorFacet).
		Padding(0, 1),
}

// stdoutIsTTY gates color and box drawing; piped output stays plain.
var stdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// renderTitle prints a styled section title.
func renderTitle(text string) {
	if !stdoutIsTTY {
		fmt.Println(text)
		return
	}
	fmt.Println(Styles.Title.Render(text))
}

// renderField prints one aligned label/value pair.
func renderField(label string, format string, args ...interface{}) {
	value := fmt.Sprintf(format, args...)
	if !stdoutIsTTY {
		fmt.Printf("%-12s %s\n", label+":", value)
		return
	}
	fmt.Printf("%s %s\n", Styles.Label.Render(fmt.Sprintf("%-12s", label+":")), Styles.Value.Render(value))
}

// renderVerdict prints a success or failure line.
func renderVerdict(ok bool, text string) {
	if !stdoutIsTTY {
		fmt.Println(text)
		return
	}
	if ok {
		fmt.Printf("%s %s\n", Styles.Success.Render("✓"), Styles.Success.Render(text))
	} else {
		fmt.Printf("%s %s\n", Styles.Error.Render("✗"), Styles.Error.Render(text))
	}
}

// renderBox prints content inside a rounded box with a title.
func renderBox(title, content string) {
	if !stdoutIsTTY {
		fmt.Printf("%s\n%s\n", title, content)
		return
	}
	titleLine := Styles.Title.Render(title)
	fmt.Println(Styles.Box.Render(titleLine + "\n" + content))
}

// renderProgress draws a one-line progress bar, overwriting in place.
func renderProgress(current, total uint64, width int) {
	if !stdoutIsTTY {
		return
	}
	if total == 0 {
		total = 1
	}
	pct := float64(current) / float64(total)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := Styles.Success.Render(repeatChar('█', filled)) +
		Styles.Muted.Render(repeatChar('░', width-filled))
	fmt.Printf("\r%s %3.0f%% (%d/%d)", bar, pct*100, current, total)
}

func repeatChar(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	result := make([]rune, n)
	for i := range result {
		result[i] = c
	}
	return string(result)
}
