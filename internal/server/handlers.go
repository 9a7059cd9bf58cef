package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aryanbv/folio/internal/catalog"
	"github.com/aryanbv/folio/internal/profile"
	"github.com/aryanbv/folio/internal/techstack"
)

const defaultContributionDays = 90

// ContactAck is returned for every valid submission.
const ContactAck = "Thank you for your message! I'll get back to you soon."

// TechView is a tech item with its presentation icon.
type TechView struct {
	techstack.DisplayTechItem
	Icon catalog.Icon `json:"icon"`
}

type contactForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

// health answers 200 while the process is up. ready turns true once every
// provider slot has resolved, live or not.
func (h *handlers) health(c *gin.Context) {
	providers := make(map[profile.Source]string, len(profile.Sources))
	for _, src := range profile.Sources {
		providers[src] = "loading"
		if snap := h.current(src); snap != nil {
			providers[src] = string(snap.Status)
		}
	}
	ready := h.Aggregator != nil && h.Aggregator.Board().Ready()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ready": ready, "providers": providers})
}

// current returns the snapshot for src, or nil before its first resolve.
func (h *handlers) current(src profile.Source) *profile.Snapshot {
	if h.Aggregator == nil {
		return nil
	}
	return h.Aggregator.Board().Get(src)
}

func (h *handlers) snapshot(src profile.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := h.current(src)
		if snap == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func query(c *gin.Context) catalog.Query {
	return catalog.Query{Category: c.Query("category"), Search: c.Query("q")}
}

func (h *handlers) projects(c *gin.Context) {
	all := techstack.Showcase(h.current(profile.SourceGitHub), h.Catalog, h.ShowcaseLimit)
	c.JSON(http.StatusOK, gin.H{"projects": catalog.Apply(all, query(c))})
}

func (h *handlers) repositories(c *gin.Context) {
	repos := []profile.Repository{}
	if snap := h.current(profile.SourceGitHub); snap.IsLive() {
		if shown := profile.Showcase(snap.Repositories, h.ShowcaseLimit); shown != nil {
			repos = shown
		}
	}
	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}

func (h *handlers) tech(c *gin.Context) {
	engine := techstack.FromSnapshot(h.current(profile.SourceGitHub), h.Catalog.Defaults())
	items := catalog.Apply(engine.Items(h.Catalog), query(c))

	views := make([]TechView, 0, len(items))
	for _, it := range items {
		views = append(views, TechView{DisplayTechItem: it, Icon: catalog.IconFor(it.Name)})
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      views,
		"summary":    techstack.Summarize(items),
		"categories": h.Catalog.Categories,
	})
}

func (h *handlers) certificates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"certificates": catalog.Apply(h.Catalog.Certificates, query(c))})
}

func (h *handlers) timeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tabs":    catalog.TimelineTabs,
		"entries": h.Catalog.TimelineFor(c.Query("type")),
	})
}

// platforms lists the hand-maintained platform cards. They carry no
// snapshot status because nothing is fetched for them.
func (h *handlers) platforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": h.Catalog.Platforms})
}

func (h *handlers) contributions(c *gin.Context) {
	days := defaultContributionDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = min(n, profile.MaxContributionDays)
	}

	out := []profile.ContributionDay{}
	if h.Contributions != nil {
		buckets, err := h.Contributions.Contributions(c.Request.Context(), days)
		if err != nil {
			h.Logger.Warn("contributions unavailable", "kind", profile.Classify(err), "err", err)
		} else if buckets != nil {
			out = buckets
		}
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "contributions": out})
}

func (h *handlers) contact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, a valid email and message are required"})
		return
	}

	attrs := []any{"name", form.Name, "email", form.Email, "length", len(form.Message)}
	if h.Store != nil {
		msg, err := h.Store.InsertContactMessage(form.Name, form.Email, form.Message)
		if err != nil {
			h.Logger.Error("recording contact message", "err", err)
		} else {
			attrs = append(attrs, "id", msg.ID)
		}
	}
	h.Logger.Info("contact message received", attrs...)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": ContactAck})
}
