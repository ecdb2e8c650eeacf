// Package main implements the interactive study-planning client: an
// authenticated shell over the remote subject/note API with a month
// calendar view.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/atinyakov/StudyPlanner/internal/calendar"
	"github.com/atinyakov/StudyPlanner/internal/client/api"
	"github.com/atinyakov/StudyPlanner/internal/ics"
	"github.com/atinyakov/StudyPlanner/internal/models"
	"github.com/atinyakov/StudyPlanner/internal/session"
)

var (
	version   string
	buildDate string
)

// shell holds the client's view state: the displayed month and the subjects
// fetched for it. The remote service stays the system of record; this is
// only the month cache.
type shell struct {
	client   *api.Client
	session  *session.Session
	year     int
	month    time.Month
	subjects []models.Subject
}

// repl runs the interactive loop, accepting commands to browse the calendar
// and manage subjects and notes.
func (s *shell) repl() {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("studyplanner> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, login, logout, cal, next, prev, day <n>, add, edit <id>, delete <id>, note <id>, export, exit")
		case "login":
			s.login(scanner)
		case "logout":
			if err := s.session.Clear(); err != nil {
				fmt.Println("logout failed:", err)
				continue
			}
			s.subjects = nil
			fmt.Println("Logged out")
		case "cal":
			if !s.requireLogin() {
				continue
			}
			s.render()
		case "next":
			if !s.requireLogin() {
				continue
			}
			s.year, s.month = calendar.NextMonth(s.year, s.month)
			s.refresh()
			s.render()
		case "prev":
			if !s.requireLogin() {
				continue
			}
			s.year, s.month = calendar.PrevMonth(s.year, s.month)
			s.refresh()
			s.render()
		case "day":
			if len(args) < 2 {
				fmt.Println("Usage: day <n>")
				continue
			}
			if !s.requireLogin() {
				continue
			}
			day, err := strconv.Atoi(args[1])
			if err != nil || day < 1 || day > calendar.DaysInMonth(s.year, s.month) {
				fmt.Println("Invalid day")
				continue
			}
			s.showDay(day)
		case "add":
			if !s.requireLogin() {
				continue
			}
			s.addSubject(scanner)
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			if !s.requireLogin() {
				continue
			}
			s.editSubject(scanner, args[1])
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if !s.requireLogin() {
				continue
			}
			s.deleteSubject(args[1])
		case "note":
			if len(args) < 2 {
				fmt.Println("Usage: note <id>")
				continue
			}
			if !s.requireLogin() {
				continue
			}
			s.addNote(scanner, args[1])
		case "export":
			if !s.requireLogin() {
				continue
			}
			s.export()
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// requireLogin gates data commands on an existing session, mirroring the
// redirect-to-login behavior.
func (s *shell) requireLogin() bool {
	if !s.session.Authenticated() {
		fmt.Println("Please login first")
		return false
	}
	return true
}

func (s *shell) login(scanner *bufio.Scanner) {
	fmt.Print("Username: ")
	if !scanner.Scan() {
		return
	}
	username := strings.TrimSpace(scanner.Text())

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Println("failed to read password:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	token, err := s.client.Login(ctx, username, string(passwordBytes))
	if errors.Is(err, api.ErrUserConflict) {
		fmt.Println("That user already exists with a different password")
		return
	}
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	if err := s.session.Set(token, username); err != nil {
		fmt.Println("failed to save session:", err)
		return
	}

	fmt.Printf("Welcome, %s\n", username)
	s.refresh()
	s.render()
}

// refresh reloads the displayed month from the server. On failure the stale
// list is kept and the error is shown; nothing crashes.
func (s *shell) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	subjects, err := s.client.ListSubjects(ctx, s.month, s.year)
	if err != nil {
		fmt.Println("failed to load subjects:", err)
		return
	}
	s.subjects = subjects
}

func (s *shell) render() {
	fmt.Printf("\n      %s %d\n", s.month, s.year)
	fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

	grid := calendar.BuildGrid(s.year, s.month)
	for i, cell := range grid {
		if cell.Blank() {
			fmt.Print("    ")
		} else {
			marker := " "
			if len(calendar.SubjectsOnDay(s.subjects, cell.Day, s.month, s.year)) > 0 {
				marker = "*"
			}
			fmt.Printf("%3d%s", cell.Day, marker)
		}
		if (i+1)%7 == 0 {
			fmt.Println()
		}
	}
	fmt.Println()
	fmt.Printf("%d subjects this month, * marks scheduled days\n", len(s.subjects))
}

func (s *shell) showDay(day int) {
	subjects := calendar.SubjectsOnDay(s.subjects, day, s.month, s.year)
	if len(subjects) == 0 {
		fmt.Println("Nothing scheduled")
		return
	}
	for _, sub := range subjects {
		fmt.Printf("ID: %s\nTitle: %s\nDescription: %s\n", sub.UUID, sub.Title, sub.Description)
		for _, n := range sub.Notes {
			fmt.Printf("  note [%s]: %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Content)
		}
		fmt.Println("---")
	}
}

func (s *shell) addSubject(scanner *bufio.Scanner) {
	fmt.Print("Title: ")
	if !scanner.Scan() {
		return
	}
	title := scanner.Text()

	fmt.Print("Description: ")
	if !scanner.Scan() {
		return
	}
	description := scanner.Text()

	fmt.Print("Study date (YYYY-MM-DD, empty for today): ")
	if !scanner.Scan() {
		return
	}
	req := models.CreateSubjectRequest{Title: title, Description: description}
	if raw := strings.TrimSpace(scanner.Text()); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			fmt.Println("Invalid date")
			return
		}
		req.StudyDate = &date
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created, err := s.client.CreateSubject(ctx, req)
	if err != nil {
		fmt.Println("failed to add subject:", err)
		return
	}

	// Only the created subjects that fall in the displayed month join the
	// visible list; revision reminders for later months stay out of view.
	visible := calendar.SubjectsInMonth(created, s.month, s.year)
	s.subjects = append(s.subjects, visible...)
	fmt.Printf("Created %d subjects (%d in this month)\n", len(created), len(visible))
	s.render()
}

func (s *shell) editSubject(scanner *bufio.Scanner, id string) {
	idx := -1
	for i := range s.subjects {
		if s.subjects[i].UUID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		fmt.Println("Subject not found in this month")
		return
	}

	fmt.Print("New title: ")
	if !scanner.Scan() {
		return
	}
	title := scanner.Text()

	fmt.Print("New description: ")
	if !scanner.Scan() {
		return
	}
	description := scanner.Text()

	subject := s.subjects[idx]
	subject.Title = title
	subject.Description = description

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	updated, err := s.client.EditSubject(ctx, subject)
	if err != nil {
		fmt.Println("failed to edit subject:", err)
		return
	}
	s.subjects[idx] = updated
	fmt.Println("Subject updated")
}

func (s *shell) deleteSubject(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.client.DeleteSubject(ctx, id); err != nil {
		fmt.Println("failed to delete subject:", err)
		return
	}
	for i := range s.subjects {
		if s.subjects[i].UUID == id {
			s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)
			break
		}
	}
	fmt.Println("Subject deleted")
}

func (s *shell) addNote(scanner *bufio.Scanner, subjectID string) {
	fmt.Print("Note: ")
	if !scanner.Scan() {
		return
	}
	content := scanner.Text()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	note, err := s.client.AddNote(ctx, subjectID, content)
	if err != nil {
		fmt.Println("failed to add note:", err)
		return
	}
	for i := range s.subjects {
		if s.subjects[i].UUID == note.SubjectUUID {
			s.subjects[i].Notes = append(s.subjects[i].Notes, note)
			break
		}
	}
	fmt.Println("Note added")
}

func (s *shell) export() {
	name := fmt.Sprintf("studyplan-%d-%02d.ics", s.year, int(s.month))
	if err := os.WriteFile(name, []byte(ics.Export(s.subjects, s.month, s.year)), 0o644); err != nil {
		fmt.Println("failed to write calendar file:", err)
		return
	}
	fmt.Println("Exported", name)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".studyplanner", "session.json")
}

// main parses command-line flags and starts the shell.
func main() {
	var (
		baseURL     string
		sessionPath string
		showVer     bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&sessionPath, "session", defaultSessionPath(), "path to the session file")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("StudyPlanner Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	sess := session.New(sessionPath)
	if err := sess.Load(); err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	s := &shell{
		client:  api.New(baseURL, sess),
		session: sess,
		year:    now.Year(),
		month:   now.Month(),
	}

	if sess.Authenticated() {
		fmt.Printf("Welcome back, %s\n", sess.User())
		s.refresh()
		s.render()
	} else {
		fmt.Println("Type 'login' to begin")
	}

	s.repl()
}
