package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/mystore/store-client/internal/app"
	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

func run(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "login":
		return login(ctx, c, args[1:], out)
	case "logout":
		if err := c.Auth.Logout(ctx); err != nil {
			return err
		}
		return printJSON(out, map[string]bool{"logged_out": true})
	case "profile":
		user, err := c.Auth.Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, user)
	case "products":
		return products(ctx, c, args[1:], out)
	case "position":
		if err := c.Maps.GetCurrentPosition(ctx); err != nil {
			return err
		}
		return printJSON(out, c.Maps.Center())
	}
	return errUsage
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func login(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs := newFlagSet("login")
	email := fs.StringP("email", "e", "", "account email")
	password := fs.StringP("password", "p", "", "account password")
	if err := fs.Parse(args); err != nil || *email == "" || *password == "" {
		return errUsage
	}

	auth, err := c.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	return printJSON(out, auth)
}

func products(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "list":
		return listProducts(ctx, c, args[1:], out)
	case "create":
		return createProduct(ctx, c, args[1:], out)
	case "update":
		return updateProduct(ctx, c, args[1:], out)
	case "get", "delete":
		if len(args) != 2 {
			return errUsage
		}
		if args[0] == "get" {
			p, err := c.Products.GetOne(ctx, args[1])
			if err != nil {
				return err
			}
			return printJSON(out, p)
		}
		ok, err := c.Products.Delete(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(out, ok)
	}
	return errUsage
}

func listProducts(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs := newFlagSet("list")
	limit := fs.Int("limit", 0, "maximum number of products")
	offset := fs.Int("offset", 0, "number of products to skip")
	simple := fs.Bool("simple", false, "list without pagination or taxes")
	category := fs.Int("category", 0, "only products of this category")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	var page *ports.Page
	if fs.Changed("limit") || fs.Changed("offset") {
		page = &ports.Page{Limit: *limit, Offset: *offset}
	}

	var (
		list []domain.Product
		err  error
	)
	switch {
	case *simple:
		list, err = c.Products.GetAllSimple(ctx)
	case *category > 0:
		list, err = c.Products.GetByCategory(ctx, *category, page)
	default:
		list, err = c.Products.GetAll(ctx, page)
	}
	if err != nil {
		return err
	}
	return printJSON(out, list)
}

func productFlags(name string) (*pflag.FlagSet, *string, *float64, *string, *int, *[]string) {
	fs := newFlagSet(name)
	title := fs.String("title", "", "product title")
	price := fs.Float64("price", 0, "product price")
	description := fs.String("description", "", "product description")
	category := fs.Int("category", 0, "category id")
	images := fs.StringSlice("image", nil, "image url, repeatable")
	return fs, title, price, description, category, images
}

func createProduct(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs, title, price, description, category, images := productFlags("create")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	p, err := c.Products.Create(ctx, domain.CreateProductDTO{
		Title:       *title,
		Price:       *price,
		Description: *description,
		CategoryID:  *category,
		Images:      *images,
	})
	if err != nil {
		return err
	}
	return printJSON(out, p)
}

// updateProduct sends only the flags given on the command line.
func updateProduct(ctx context.Context, c *app.Client, args []string, out io.Writer) error {
	fs, title, price, description, category, images := productFlags("update")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return errUsage
	}

	var dto domain.UpdateProductDTO
	if fs.Changed("title") {
		dto.Title = title
	}
	if fs.Changed("price") {
		dto.Price = price
	}
	if fs.Changed("description") {
		dto.Description = description
	}
	if fs.Changed("category") {
		dto.CategoryID = category
	}
	if fs.Changed("image") {
		dto.Images = images
	}

	p, err := c.Products.Update(ctx, fs.Arg(0), dto)
	if err != nil {
		return fmt.Errorf("update %s: %w", fs.Arg(0), err)
	}
	return printJSON(out, p)
}
