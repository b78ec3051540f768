package masterdata

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"craftstore/core/crafting"
	"craftstore/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/tidwall/gjson"
)

// Recipe is a crafting definition reduced to what evaluation needs.
type Recipe struct {
	ID      uint32                      `json:"id"`
	Name    string                      `json:"name"`
	Station string                      `json:"station"`
	Lines   []crafting.RequiredItemLine `json:"lines"`
}

// Catalog is a loaded snapshot of the group and recipe masters.
type Catalog struct {
	Groups  crafting.GroupTable
	Recipes []Recipe

	// Built is when the catalog was loaded.
	Built time.Time
	// TTL is how long the catalog may be reused.
	TTL time.Duration

	byID map[uint32]int
}

// NewCatalog indexes recipes by id. Later duplicates replace earlier ones.
func NewCatalog(groups crafting.GroupTable, recipes []Recipe) *Catalog {
	c := &Catalog{
		Groups:  groups,
		Recipes: recipes,
		Built:   time.Now(),
		byID:    make(map[uint32]int, len(recipes)),
	}
	for i, r := range recipes {
		c.byID[r.ID] = i
	}
	return c
}

// IsExpired reports whether the catalog should be reloaded.
func (c *Catalog) IsExpired() bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(c.Built) > c.TTL
}

// Recipe looks a recipe up by id.
func (c *Catalog) Recipe(id uint32) (Recipe, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Recipe{}, false
	}
	return c.Recipes[i], true
}

// FindRecipe resolves a numeric id or a case-insensitive recipe name.
func (c *Catalog) FindRecipe(query string) (Recipe, bool) {
	query = strings.TrimSpace(query)
	if id, err := strconv.ParseUint(query, 10, 32); err == nil {
		if r, ok := c.Recipe(uint32(id)); ok {
			return r, true
		}
	}
	for _, r := range c.Recipes {
		if strings.EqualFold(r.Name, query) {
			return r, true
		}
	}
	return Recipe{}, false
}

// RecipesForStation returns recipes of a station in id order. An empty station returns all.
func (c *Catalog) RecipesForStation(station string) []Recipe {
	var out []Recipe
	for _, r := range c.Recipes {
		if station == "" || strings.EqualFold(r.Station, station) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Requirement pairs a recipe's lines with the catalog's group master.
func (c *Catalog) Requirement(r Recipe) crafting.RecipeRequirement {
	return crafting.RecipeRequirement{Lines: r.Lines, Groups: c.Groups}
}

// ParseGroups parses the group master JSON.
func ParseGroups(data []byte) (crafting.GroupTable, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: group master is not valid JSON", ErrMalformed)
	}

	groups := make(crafting.GroupTable)
	var parseErr error
	gjson.GetBytes(data, "groups").ForEach(func(_, v gjson.Result) bool {
		id, err := idField(v.Get("id"), "group id")
		if err != nil {
			parseErr = fmt.Errorf("group: %w", err)
			return false
		}
		def := crafting.GroupDefinition{GroupID: id}
		v.Get("requiredItemIdList").ForEach(func(_, member gjson.Result) bool {
			memberID, err := idField(member, "member id")
			if err != nil {
				parseErr = fmt.Errorf("group %d: %w", id, err)
				return false
			}
			def.MemberItemIDs = append(def.MemberItemIDs, memberID)
			return true
		})
		if parseErr != nil {
			return false
		}
		groups[id] = def
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return groups, nil
}

// ParseRecipes parses the recipe master JSON.
func ParseRecipes(data []byte) ([]Recipe, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: recipe master is not valid JSON", ErrMalformed)
	}

	var recipes []Recipe
	var parseErr error
	gjson.GetBytes(data, "recipes").ForEach(func(_, v gjson.Result) bool {
		id, err := idField(v.Get("id"), "recipe id")
		if err != nil {
			parseErr = fmt.Errorf("recipe: %w", err)
			return false
		}

		var tuples []string
		v.Get("requiredItemList").ForEach(func(_, t gjson.Result) bool {
			tuples = append(tuples, t.String())
			return true
		})
		var codes []int64
		var codeErr error
		v.Get("requiredItemTypeList").ForEach(func(_, c gjson.Result) bool {
			code, err := wholeNumber(c, "requirement type")
			if err != nil {
				codeErr = err
				return false
			}
			codes = append(codes, code)
			return true
		})
		if codeErr != nil {
			parseErr = fmt.Errorf("recipe %d: %w", id, codeErr)
			return false
		}

		lines, err := ParseLines(tuples, codes)
		if err != nil {
			parseErr = fmt.Errorf("recipe %d: %w", id, err)
			return false
		}

		recipes = append(recipes, Recipe{
			ID:      id,
			Name:    v.Get("name").String(),
			Station: strings.ToLower(v.Get("station").String()),
			Lines:   lines,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return recipes, nil
}

// wholeNumber reads an integer field. Missing, non-numeric and fractional values are malformed.
func wholeNumber(v gjson.Result, field string) (int64, error) {
	if !v.Exists() {
		return 0, fmt.Errorf("%w: %s is missing", ErrMalformed, field)
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s %s is not a number", ErrMalformed, field, v.Raw)
	}
	n := v.Int()
	if v.Float() != float64(n) {
		return 0, fmt.Errorf("%w: %s %s is not a whole number", ErrMalformed, field, v.Raw)
	}
	return n, nil
}

func idField(v gjson.Result, field string) (uint32, error) {
	n, err := wholeNumber(v, field)
	if err != nil {
		return 0, err
	}
	return toID(n)
}

// Load downloads and parses both masters concurrently.
func Load(ctx context.Context, client storage.Client, bucket string, cfg Config) (*Catalog, error) {
	var (
		groups    crafting.GroupTable
		recipes   []Recipe
		groupErr  error
		recipeErr error
		wg        sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		data, err := readObject(ctx, client, bucket, cfg.GroupObject)
		if err != nil {
			groupErr = err
			return
		}
		groups, groupErr = ParseGroups(data)
	}()

	go func() {
		defer wg.Done()
		data, err := readObject(ctx, client, bucket, cfg.RecipeObject)
		if err != nil {
			recipeErr = err
			return
		}
		recipes, recipeErr = ParseRecipes(data)
	}()

	wg.Wait()

	if groupErr != nil {
		return nil, fmt.Errorf("failed to load group master: %w", groupErr)
	}
	if recipeErr != nil {
		return nil, fmt.Errorf("failed to load recipe master: %w", recipeErr)
	}

	catalog := NewCatalog(groups, recipes)
	catalog.TTL = cfg.TTL()
	return catalog, nil
}

func readObject(ctx context.Context, client storage.Client, bucket, objectName string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", objectName, err)
	}
	return data, nil
}
