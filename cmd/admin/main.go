// Package main runs the interior studio admin console, an interactive
// shell over the backend's REST API with a persisted session.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/interiorvision/interior/internal/client/api"
	"github.com/interiorvision/interior/internal/client/auth"
	"github.com/interiorvision/interior/internal/client/controller"
	"github.com/interiorvision/interior/internal/client/guard"
	"github.com/interiorvision/interior/internal/client/session"
	"github.com/interiorvision/interior/internal/config"
	"github.com/interiorvision/interior/internal/logger"
	"github.com/interiorvision/interior/internal/models"
)

var (
	version   string
	buildDate string
)

// console bundles the pieces the shell commands operate on.
type console struct {
	store    *session.Store
	gateway  *auth.Gateway
	projects *controller.Projects
	contacts *controller.Contacts
	in       *bufio.Scanner
}

// check runs the route guard for the given requirement and reports
// whether the command may proceed.
func (c *console) check(req guard.Requirement) bool {
	var sess *models.Session
	if s, ok := c.store.Current(); ok {
		sess = &s
	}
	switch guard.Decide(sess, req) {
	case guard.Allow:
		return true
	case guard.RedirectLogin:
		fmt.Println("Please log in first")
	case guard.RedirectHome:
		fmt.Println("Admin access required")
	}
	return false
}

// confirm asks a yes/no question and returns true on "y" or "yes".
func (c *console) confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

func (c *console) login(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: login <username> <password> [admin]")
		return
	}
	requestedAdmin := len(args) > 2 && args[2] == "admin"
	sess, err := c.gateway.Login(ctx, args[0], args[1], requestedAdmin)
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	fmt.Printf("Logged in as %s (admin: %t)\n", sess.Username, sess.IsAdmin)
}

func (c *console) whoami() {
	sess, ok := c.store.Current()
	if !ok {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s (admin: %t)\n", sess.Username, sess.IsAdmin)
}

func (c *console) listProjects(ctx context.Context) {
	if err := c.projects.Refresh(ctx); err != nil {
		fmt.Println("Failed to load projects:", err)
		return
	}
	items := c.projects.VisibleItems()
	if len(items) == 0 {
		fmt.Println("No projects")
		return
	}
	for _, p := range items {
		fmt.Printf("%4d  %-30s %-12s %-15s %d  %.1f\n",
			p.ID, p.Title, p.Category, p.Location, p.Year, p.Rating)
	}
}

func (c *console) addProject(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: projects add <title> <category> [location] [year] [image] [rating]")
		return
	}
	draft := models.ProjectDraft{
		Title:    args[0],
		Category: models.Category(args[1]),
	}
	if len(args) > 2 {
		draft.Location = args[2]
	}
	if len(args) > 3 {
		draft.Year, _ = strconv.Atoi(args[3])
	}
	if len(args) > 4 {
		draft.Image = args[4]
	}
	if len(args) > 5 {
		draft.Rating, _ = strconv.ParseFloat(args[5], 64)
	}
	created, err := c.projects.Create(ctx, draft)
	if err != nil {
		fmt.Println("Failed to add project:", err)
		return
	}
	fmt.Printf("Project %d added\n", created.ID)
}

func (c *console) deleteProject(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: projects delete <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Invalid project id:", args[0])
		return
	}
	if !c.confirm(fmt.Sprintf("Delete project %d?", id)) {
		fmt.Println("Cancelled")
		return
	}
	if err := c.projects.Delete(ctx, id); err != nil {
		fmt.Println("Failed to delete project:", err)
		return
	}
	fmt.Println("Project deleted")
}

func (c *console) listContacts(ctx context.Context) {
	if err := c.contacts.Refresh(ctx); err != nil {
		fmt.Println("Failed to load contacts:", err)
		return
	}
	items := c.contacts.VisibleItems()
	if len(items) == 0 {
		fmt.Println("No contacts")
		return
	}
	for _, ct := range items {
		fmt.Printf("%-38s %-20s %-28s %-12s %s\n",
			ct.ID, ct.Name, ct.Email, ct.Status, ct.CreatedAt)
	}
}

func (c *console) updateContactStatus(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: contacts status <id> <new|in_progress|completed|archived>")
		return
	}
	if err := c.contacts.UpdateStatus(ctx, args[0], models.ContactStatus(args[1])); err != nil {
		fmt.Println("Failed to update status:", err)
		return
	}
	fmt.Println("Status updated")
}

func (c *console) deleteContact(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: contacts delete <id>")
		return
	}
	if !c.confirm(fmt.Sprintf("Delete contact %s?", args[0])) {
		fmt.Println("Cancelled")
		return
	}
	if err := c.contacts.Delete(ctx, args[0]); err != nil {
		fmt.Println("Failed to delete contact:", err)
		return
	}
	fmt.Println("Contact deleted")
}

func (c *console) projectsCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: projects <list|add|delete|filter|search> ...")
		return
	}
	switch args[0] {
	case "list":
		if c.check(guard.RequireAuthenticated) {
			c.listProjects(ctx)
		}
	case "add":
		if c.check(guard.RequireAdmin) {
			c.addProject(ctx, args[1:])
		}
	case "delete":
		if c.check(guard.RequireAdmin) {
			c.deleteProject(ctx, args[1:])
		}
	case "filter":
		filter := ""
		if len(args) > 1 {
			filter = args[1]
		}
		c.projects.SetFilter(filter)
		fmt.Println("Filter set")
	case "search":
		c.projects.SetSearch(strings.Join(args[1:], " "))
		fmt.Println("Search set")
	default:
		fmt.Println("Unknown projects command:", args[0])
	}
}

func (c *console) contactsCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: contacts <list|status|delete|filter|search> ...")
		return
	}
	switch args[0] {
	case "list":
		if c.check(guard.RequireAuthenticated) {
			c.listContacts(ctx)
		}
	case "status":
		if c.check(guard.RequireAdmin) {
			c.updateContactStatus(ctx, args[1:])
		}
	case "delete":
		if c.check(guard.RequireAdmin) {
			c.deleteContact(ctx, args[1:])
		}
	case "filter":
		filter := ""
		if len(args) > 1 {
			filter = args[1]
		}
		c.contacts.SetFilter(filter)
		fmt.Println("Filter set")
	case "search":
		c.contacts.SetSearch(strings.Join(args[1:], " "))
		fmt.Println("Search set")
	default:
		fmt.Println("Unknown contacts command:", args[0])
	}
}

// repl runs the interactive shell loop.
func (c *console) repl(ctx context.Context, client *api.Client) {
	for {
		fmt.Print("interior> ")
		if !c.in.Scan() {
			break
		}
		line := strings.TrimSpace(c.in.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, login, logout, whoami, projects, contacts, submit, exit")
		case "login":
			c.login(ctx, args[1:])
		case "logout":
			c.gateway.Logout()
			fmt.Println("Logged out")
		case "whoami":
			c.whoami()
		case "projects":
			c.projectsCmd(ctx, args[1:])
		case "contacts":
			c.contactsCmd(ctx, args[1:])
		case "submit":
			if len(args) < 3 {
				fmt.Println("Usage: submit <name> <email> [message...]")
				continue
			}
			draft := models.ContactDraft{
				Name:    args[1],
				Email:   args[2],
				Message: strings.Join(args[3:], " "),
			}
			id, err := client.SubmitContact(ctx, draft)
			if err != nil {
				fmt.Println("Failed to submit contact:", err)
				continue
			}
			fmt.Println("Contact submitted:", id)
		case "exit", "quit":
			return
		default:
			fmt.Println("Unknown command:", args[0])
		}
	}
}

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()

	store := session.NewStore(options.SessionFile)
	if sess, ok := store.Load(); ok {
		fmt.Printf("Restored session for %s\n", sess.Username)
	}

	client := api.New(options.BaseURL, nil)
	gateway := auth.New(client, store, log.Log)

	token := func() string {
		sess, ok := store.Current()
		if !ok {
			return ""
		}
		return sess.Token
	}

	c := &console{
		store:    store,
		gateway:  gateway,
		projects: controller.NewProjects(client, token),
		contacts: controller.NewContacts(client, token),
		in:       bufio.NewScanner(os.Stdin),
	}

	c.repl(context.Background(), client)
}
