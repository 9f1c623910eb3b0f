package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"shortlist/pkg/config"
	"shortlist/pkg/core"
	"shortlist/pkg/ux"
	"shortlist/pkg/validation"
)

const (
	choiceAdd = iota + 1
	choiceDescending
	choiceSearch
	choiceAscending
	choiceExit
)

const Prompt = "Enter your choice: "

// Menu is the interactive front end over a Shortlist.
type Menu struct {
	sl      *core.Shortlist
	scanner *bufio.Scanner
	out     io.Writer
	table   *ux.Table
}

func NewMenu(sl *core.Shortlist, in io.Reader, out io.Writer, display config.DisplayConfig) *Menu {
	return &Menu{
		sl:      sl,
		scanner: bufio.NewScanner(in),
		out:     out,
		table:   ux.NewTable(out, display),
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		choice, err := validation.ParseChoice(line, choiceExit)
		if err != nil {
			if errors.Is(err, validation.ErrChoiceRange) {
				m.table.Notice("Enter a number between 1 and 5.")
			} else {
				m.table.Notice("Invalid input. Try again.")
			}
			continue
		}

		switch choice {
		case choiceAdd:
			if !m.handleAdd() {
				return
			}
		case choiceDescending:
			m.table.Render("All Candidates (Highest → Lowest)", m.sl.Descending())
		case choiceSearch:
			fmt.Fprint(m.out, "Enter skill to search: ")
			skill, ok := m.readLine()
			if !ok {
				return
			}
			m.table.Render("Search Results for: "+skill, m.sl.SearchByTag(skill))
		case choiceAscending:
			m.table.Render("All Candidates (Lowest → Highest)", m.sl.Ascending())
		case choiceExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
=== Skill-Based Candidate Shortlisting System ===
1. Add New Candidate
2. Display All Candidates (Descending Score Order)
3. Search Candidates by Skill
4. Display All Candidates (Ascending Score Order)
5. Exit
`)
	fmt.Fprint(m.out, Prompt)
}

// handleAdd collects one candidate. It returns false if input ended.
func (m *Menu) handleAdd() bool {
	fmt.Fprint(m.out, "\nEnter candidate details:\n")
	for {
		var in validation.CandidateInput
		var ok bool

		fmt.Fprint(m.out, "Name: ")
		if in.Name, ok = m.readLine(); !ok {
			return false
		}
		fmt.Fprint(m.out, "Skill: ")
		if in.Tag, ok = m.readLine(); !ok {
			return false
		}
		fmt.Fprint(m.out, "Score (0-100): ")
		for {
			line, ok := m.readLine()
			if !ok {
				return false
			}
			score, err := validation.ParseScore(line)
			if err == nil {
				in.Score = score
				break
			}
			fmt.Fprint(m.out, "Invalid! Enter integer 0-100: ")
		}

		rec, err := in.Record()
		if err != nil {
			m.table.Notice(fmt.Sprintf("Invalid candidate: %v", err))
			continue
		}
		m.sl.Insert(rec)
		m.table.Success("Candidate added successfully!")
		return true
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}
