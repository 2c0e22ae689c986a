package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

const purchasedKey = "purchased"

func (a *App) loadPurchases(ctx context.Context) ([]int64, error) {
	raw, err := a.store.Get(ctx, purchasedKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		// corrupt record reads as empty
		a.logger.Warn(ctx, "corrupt purchase record, resetting", "error", err)
		return nil, nil
	}
	return ids, nil
}

// Buy records a locally confirmed purchase of the course with the given ID.
func (a *App) Buy(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("Usage: buy <course id>")
		return nil
	}

	ids, err := a.loadPurchases(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if slices.Contains(ids, id) {
		fmt.Println("Already purchased")
		return nil
	}

	ids = append(ids, id)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, purchasedKey, raw); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Purchased course #%d\n", id)
	return nil
}

// Purchases lists the locally recorded purchases.
func (a *App) Purchases(ctx context.Context) error {
	ids, err := a.loadPurchases(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if len(ids) == 0 {
		fmt.Println("No purchases yet")
		return nil
	}
	for _, id := range ids {
		fmt.Printf("Course #%d\n", id)
	}
	return nil
}
