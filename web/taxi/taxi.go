// Package taxi embeds the server-rendered templates and static assets of the
// taxi service.
package taxi

import (
	"embed"

	"github.com/JaimeStill/taxi-service/pkg/module"
	"github.com/JaimeStill/taxi-service/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

//go:embed public/*
var publicFS embed.FS

// Layout wraps every view.
const Layout = "base.html"

// StaticPath is the mount point of the static assets.
const StaticPath = "/static"

var views = []web.ViewDef{
	{Template: "index.html", Title: "Home"},
	{Template: "login.html", Title: "Login"},
	{Template: "logged_out.html", Title: "Logged out"},
	{Template: "404.html", Title: "Not Found"},
	{Template: "500.html", Title: "Error"},
	{Template: "manufacturer_list.html", Title: "Manufacturers"},
	{Template: "manufacturer_form.html", Title: "Manufacturer"},
	{Template: "manufacturer_confirm_delete.html", Title: "Delete manufacturer"},
	{Template: "driver_list.html", Title: "Drivers"},
	{Template: "driver_detail.html", Title: "Driver"},
	{Template: "driver_form.html", Title: "Create driver"},
	{Template: "driver_license_form.html", Title: "Update license"},
	{Template: "driver_confirm_delete.html", Title: "Delete driver"},
	{Template: "car_list.html", Title: "Cars"},
	{Template: "car_detail.html", Title: "Car"},
	{Template: "car_form.html", Title: "Car"},
	{Template: "car_confirm_delete.html", Title: "Delete car"},
}

// Views returns the definitions of every embedded view.
func Views() []web.ViewDef {
	out := make([]web.ViewDef, len(views))
	copy(out, views)
	return out
}

// NewTemplateSet parses the embedded layouts and views.
func NewTemplateSet(basePath string) (*web.TemplateSet, error) {
	return web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		views,
	)
}

// NewRenderer parses the templates and binds them to Layout.
func NewRenderer(basePath string) (web.Renderer, error) {
	ts, err := NewTemplateSet(basePath)
	if err != nil {
		return nil, err
	}
	return ts.Layout(Layout), nil
}

// NewStaticModule serves the embedded public assets under StaticPath.
func NewStaticModule() *module.Module {
	return module.New(StaticPath, web.StaticServer(publicFS, "public", ""))
}
