// Package cli implements the interactive terminal client for the shopkeeper
// backend: account registration, login, and catalog browsing over HTTP.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/shopkeeper/shopkeeper/internal/client/api"
	"github.com/shopkeeper/shopkeeper/internal/client/config"
)

// apiClient is the backend surface the app needs. The real api.Client
// satisfies it; tests can provide a stub.
type apiClient interface {
	Signup(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*api.Session, error)
	Products(ctx context.Context, token string) ([]*api.Product, error)
	AddProducts(ctx context.Context, token string, batch []*api.Product) ([]*api.Product, error)
}

type App struct {
	config  *config.Config
	client  apiClient
	session *api.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerBaseURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "not logged in"
	}
	return a.session.Email
}

// Register prompts for account details and creates the account.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Signup(ctx, name, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("User registered successfully")
	return nil
}

// Login prompts for credentials, authenticates, and keeps the session for
// subsequent commands. The issued token is printed so it can be reused with
// other tools.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.session = session
	printlnFn("Logged in as", session.Email)
	printlnFn("Token:", session.Token)
	return nil
}

// Products fetches and prints the catalog.
func (a *App) Products(ctx context.Context) error {
	products, err := a.client.Products(ctx, a.session.Token)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-36s %-20s %s\n", "ID", "NAME", "COUNT")
	for _, p := range products {
		fmt.Fprintf(&buf, "%-36s %-20s %d\n", p.ID, p.Name, p.Count)
	}
	printlnFn(buf.String())
	return nil
}

// AddProduct prompts for a single catalog item and submits it.
func (a *App) AddProduct(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter product name", os.Stdout)
	if err != nil {
		return err
	}
	countText, err := GetSimpleText(a.reader, "Enter count", os.Stdout)
	if err != nil {
		return err
	}
	count, err := strconv.ParseInt(countText, 10, 64)
	if err != nil {
		printlnFn("Count must be a number")
		return err
	}
	imageURL, err := GetSimpleText(a.reader, "Enter image URL", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.client.AddProducts(ctx, a.session.Token,
		[]*api.Product{{Name: name, Count: count, ImageURL: imageURL}})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, p := range created {
		printlnFn("Added product", p.ID)
	}
	return nil
}

// Logout drops the current session.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	printlnFn("Logged out")
	return nil
}
