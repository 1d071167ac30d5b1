package shipping

// DefaultSellerKey groups items that carry no seller identifier.
const DefaultSellerKey = "default-seller"

// PartitionBySeller splits a flat cart into per-seller groups. Groups appear
// in first-seen seller order and items keep their cart order within a group,
// so repeated calls over the same cart produce the same layout.
func PartitionBySeller(items []CartItem) []SellerGroup {
	groups := make([]SellerGroup, 0)
	index := map[string]int{}

	for _, item := range items {
		sellerID := item.SellerID
		if sellerID == "" {
			sellerID = DefaultSellerKey
		}

		i, ok := index[sellerID]
		if !ok {
			i = len(groups)
			index[sellerID] = i
			groups = append(groups, SellerGroup{
				SellerID:   sellerID,
				SellerName: item.SellerName,
			})
		}

		groups[i].Items = append(groups[i].Items, item)
		if groups[i].SellerName == "" && item.SellerName != "" {
			groups[i].SellerName = item.SellerName
		}
	}

	return groups
}
