// Package fixtures siembra el store con los datos de arranque embebidos en fixtures.yaml.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
	"github.com/jhoicas/autotienda-api/internal/domain/sales"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Set contenido de un archivo de fixtures.
type Set struct {
	Users    []User    `yaml:"users"`
	Products []Product `yaml:"products"`
	Orders   []Order   `yaml:"orders"`
	Tickets  []Ticket  `yaml:"tickets"`
	FAQs     []FAQ     `yaml:"faqs"`
}

type User struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Status   string `yaml:"status"`
}

type Product struct {
	Name        string            `yaml:"name"`
	Category    string            `yaml:"category"`
	Price       string            `yaml:"price"`
	Description string            `yaml:"description"`
	Images      []string          `yaml:"images"`
	Specs       map[string]string `yaml:"specs"`
	Features    []string          `yaml:"features"`
	Stock       int               `yaml:"stock"`
}

// Order referencia al usuario por username y a los productos por su posición (1-based) en Products.
type Order struct {
	User   string      `yaml:"user"`
	Status string      `yaml:"status"`
	Items  []OrderLine `yaml:"items"`
}

type OrderLine struct {
	Product  int `yaml:"product"`
	Quantity int `yaml:"quantity"`
}

// Ticket con User vacío se siembra como ticket anónimo.
type Ticket struct {
	User     string `yaml:"user"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Subject  string `yaml:"subject"`
	Message  string `yaml:"message"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
}

type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Category string `yaml:"category"`
	Order    *int   `yaml:"order"`
}

// Target repositorios a sembrar.
type Target struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Support  repository.SupportRepository
	FAQs     repository.FAQRepository
}

// Options ajustes de siembra. BcryptCost 0 usa bcrypt.DefaultCost.
type Options struct {
	BcryptCost int
}

// Default devuelve el set embebido en el binario.
func Default() (*Set, error) {
	return Parse(defaultFixtures)
}

// Parse decodifica un documento YAML de fixtures. Rechaza claves desconocidas.
func Parse(data []byte) (*Set, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return &set, nil
}

// Seed inserta el set en los repositorios. Si ya existen usuarios no hace nada y devuelve false,
// de modo que reiniciar contra una base persistente no duplica datos.
func Seed(ctx context.Context, t Target, set *Set, opts Options) (bool, error) {
	n, err := t.Users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := time.Now()

	userIDs := make(map[string]int64, len(set.Users))
	for _, fu := range set.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(fu.Password), cost)
		if err != nil {
			return false, fmt.Errorf("fixtures: hash de %s: %w", fu.Username, err)
		}
		u := &entity.User{
			Name:         fu.Name,
			Username:     fu.Username,
			Email:        fu.Email,
			PasswordHash: string(hash),
			Role:         nonEmpty(fu.Role, entity.RoleCliente),
			Status:       nonEmpty(fu.Status, entity.UserStatusActivo),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := t.Users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("fixtures: usuario %s: %w", fu.Username, err)
		}
		userIDs[fu.Username] = u.ID
	}

	products := make([]*entity.Product, 0, len(set.Products))
	for _, fp := range set.Products {
		price, err := decimal.NewFromString(fp.Price)
		if err != nil {
			return false, fmt.Errorf("fixtures: precio de %s: %w", fp.Name, err)
		}
		specs := fp.Specs
		if specs == nil {
			specs = map[string]string{}
		}
		p := &entity.Product{
			Name:        fp.Name,
			Category:    fp.Category,
			Price:       price,
			Description: fp.Description,
			Images:      catalog.NormalizeImages(fp.Name, "", fp.Images),
			Specs:       specs,
			Features:    fp.Features,
			Stock:       fp.Stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.Products.Create(ctx, p); err != nil {
			return false, fmt.Errorf("fixtures: producto %s: %w", fp.Name, err)
		}
		products = append(products, p)
	}

	for i, fo := range set.Orders {
		userID, ok := userIDs[fo.User]
		if !ok {
			return false, fmt.Errorf("fixtures: pedido %d referencia usuario desconocido %q", i+1, fo.User)
		}
		items := make([]entity.OrderItem, 0, len(fo.Items))
		for _, line := range fo.Items {
			if line.Product < 1 || line.Product > len(products) {
				return false, fmt.Errorf("fixtures: pedido %d referencia producto %d fuera de rango", i+1, line.Product)
			}
			items = append(items, sales.SnapshotItem(products[line.Product-1], line.Quantity))
		}
		o := &entity.Order{
			UserID:    userID,
			Items:     items,
			Total:     sales.OrderTotal(items),
			Status:    nonEmpty(fo.Status, entity.OrderStatusPendiente),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := t.Orders.Create(ctx, o); err != nil {
			return false, fmt.Errorf("fixtures: pedido %d: %w", i+1, err)
		}
	}

	for _, ft := range set.Tickets {
		ticket := &entity.SupportTicket{
			Name:      ft.Name,
			Email:     ft.Email,
			Subject:   ft.Subject,
			Message:   ft.Message,
			Category:  ft.Category,
			Status:    nonEmpty(ft.Status, entity.TicketStatusAbierto),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if ft.User != "" {
			id, ok := userIDs[ft.User]
			if !ok {
				return false, fmt.Errorf("fixtures: ticket %q referencia usuario desconocido %q", ft.Subject, ft.User)
			}
			ticket.UserID = id
			for _, fu := range set.Users {
				if fu.Username == ft.User {
					ticket.Name = nonEmpty(ticket.Name, fu.Name)
					ticket.Email = nonEmpty(ticket.Email, fu.Email)
				}
			}
		}
		if err := t.Support.Create(ctx, ticket); err != nil {
			return false, fmt.Errorf("fixtures: ticket %q: %w", ft.Subject, err)
		}
	}

	for _, ff := range set.FAQs {
		order := entity.DefaultFAQOrder
		if ff.Order != nil {
			order = *ff.Order
		}
		f := &entity.FAQ{
			Question:  ff.Question,
			Answer:    ff.Answer,
			Category:  nonEmpty(ff.Category, entity.DefaultFAQCategory),
			Order:     order,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := t.FAQs.Create(ctx, f); err != nil {
			return false, fmt.Errorf("fixtures: faq %q: %w", ff.Question, err)
		}
	}

	log.Info().
		Int("users", len(set.Users)).
		Int("products", len(set.Products)).
		Int("orders", len(set.Orders)).
		Int("tickets", len(set.Tickets)).
		Int("faqs", len(set.FAQs)).
		Msg("fixtures sembrados")
	return true, nil
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
