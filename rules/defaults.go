package rules

import "slices"

// DefaultAnchors returns the built-in furniture and home-goods anchor terms.
// The returned slice is a fresh copy.
func DefaultAnchors() []string {
	return slices.Clone(defaultAnchors)
}

// DefaultExclusions returns the built-in exclusion vocabulary: navigation and
// checkout UI, pricing and currency codes, review and spec-sheet headings,
// and English stop-words.
func DefaultExclusions() []string {
	return slices.Clone(defaultExclusions)
}

// DefaultAttributes returns the lowercase words allowed to continue a
// product name to the right of an anchor.
func DefaultAttributes() []string {
	return slices.Clone(defaultAttributes)
}

// DefaultLexicon builds a Lexicon from the built-in vocabulary.
func DefaultLexicon(opts ...LexiconOption) *Lexicon {
	opts = append([]LexiconOption{WithAttributes(defaultAttributes)}, opts...)
	return NewLexicon(defaultAnchors, defaultExclusions, opts...)
}

var defaultAnchors = []string{
	"sofa", "sofas", "couch", "couches", "loveseat", "sectional", "chair", "chairs",
	"armchair", "stool", "stools", "barstool", "bench", "benches", "ottoman", "footstool",
	"table", "tables", "dining table", "coffee table", "side table", "end table",
	"console", "console table", "desk", "desks", "bed", "beds", "daybed", "bunk bed",
	"bed frame", "headboard", "footboard", "mattress", "mattresses", "dresser", "dressers",
	"chest", "chest of drawers", "nightstand", "bedside table", "sideboard", "buffet",
	"cabinet", "cabinets", "bookcase", "bookshelf", "shelf", "shelves", "shelving",
	"tv unit", "media unit", "media console", "entertainment center", "wardrobe",
	"armoire", "closet", "hammock", "hammocks", "planter", "planters", "plant stand",
	"mirror", "mirrors", "vanity", "vanities", "lamp", "lamps", "light", "lighting",
	"pendant", "chandelier", "sconce", "rug", "rugs", "swing", "swings", "umbrella",
	"umbrellas", "topper", "protector",
}

var defaultExclusions = []string{
	"home", "shop", "products", "collections", "category", "categories", "all", "view all",
	"search", "filter", "sort by", "refine by", "grid", "list", "account", "login",
	"log in", "register", "sign up", "sign in", "logout", "cart", "basket", "checkout",
	"add to cart", "view cart", "continue shopping", "shopping", "wishlist",
	"add to wishlist", "quick view", "view", "share", "tweet", "pin it", "facebook",
	"twitter", "pinterest", "instagram", "youtube", "google", "next", "previous", "page",
	"show more", "load more", "back", "go to", "more results", "menu", "close", "skip",
	"content", "zoom", "expand", "esc", "select", "choose", "change", "request", "contact",
	"email", "phone", "chat", "call", "send", "message", "subscribe", "newsletter",
	"mailing list", "about us", "our story", "contact us", "customer service", "support",
	"help", "faq", "faqs", "need help", "shipping", "delivery", "free shipping",
	"dispatch", "returns", "refunds", "policy", "policies", "terms", "service", "privacy",
	"warranty", "guarantee", "plan", "protection", "guardsman", "track my order", "order",
	"orders", "purchase", "payment", "payments", "financing", "pay", "emi", "afterpay",
	"klarna", "zip", "paypal", "reviews", "review", "testimonials", "customer reviews",
	"write a review", "rating", "ratings", "stars", "based on", "verified buyer",
	"details", "description", "specifications", "technical details", "features",
	"key features", "product details", "product info", "information", "dimensions", "size",
	"width", "depth", "height", "length", "weight", "cm", "inches", "kg", "lbs", "diam",
	"materials", "material", "upholstery", "construction", "care", "maintenance",
	"cleaning", "color", "colour", "finish", "styles", "style", "design", "designer",
	"brand", "vendor", "manufacturer", "collection", "range", "assembly", "installation",
	"instructions", "guide", "how to", "price", "regular price", "sale price",
	"unit price", "total price", "save", "off", "discount", "sale", "clearance", "offers",
	"promotion", "promotions", "deal", "deals", "bundle", "rrp", "was", "now", "from",
	"usd", "eur", "gbp", "aud", "cad", "sgd", "sek", "nzd", "inr", "php", "zar", "dkk",
	"hkd", "myr", "tax", "vat", "gst", "inclusive", "exclusive", "and", "or", "the", "a",
	"an", "is", "are", "were", "in", "on", "at", "to", "for", "with", "by", "as", "of",
	"our", "your", "you", "we", "us", "it", "its", "they", "them", "this", "that", "these",
	"those", "new", "arrivals", "featured", "related", "recommended", "popular", "best",
	"sellers", "also", "more", "other", "available", "in stock", "out of stock",
	"sold out", "backordered", "unavailable", "limited", "ready", "only", "accessories",
	"decor", "homewares", "textiles", "gifts", "storage", "outdoor", "indoor", "set",
	"pcs", "queen", "king", "twin", "cal", "california", "single", "double", "left",
	"right", "hand", "facing", "plus", "complete", "gift card", "gift cards",
	"gift voucher", "gift vouchers", "membership", "card", "bulb", "bulbs", "news",
	"journal", "blog", "articles", "text", "image", "images", "video", "gallery", "day",
	"days", "week", "weeks", "month", "months", "year", "years", "true", "false", "llc",
	"inc", "ltd", "co", "gmbh", "srl", "est", "aedt", "gmt", "sku", "id", "qty", "n/a",
	"ref", "loading", "refresh", "tap", "click", "slide", "toggle", "swatches", "options",
	"variant", "am", "pm", "no", "yes", "ok", "good", "great", "nice", "beautiful",
	"quality", "comfy", "perfect", "love", "item", "items", "furniture", "via", "http",
	"https", "www", "com", "uk", "au", "org", "note", "please", "read", "see", "find",
	"check", "visit", "get", "buy", "what", "how", "why", "be", "do", "go", "me", "my",
	"so", "up", ",", ".", ":", ";", "?", "!", "|", "/", `\`, "(", ")", "[", "]", "{", "}",
	"<", ">", "=", "+", "*", "%", "#", "@", "frequently", "bought", "together", "recently",
	"viewed", "customers", "need", "know", "use", "collapsible", "tabs", "detailed",
	"make", "purchasing", "decision", "ex", "x", "pin", "error", "liquid", "snippet",
	"asset", "icon", "could", "not", "found", "translation", "missing", "en", "general",
	"accessibility", "label", "compare_at_price", "selling_plan_allocations",
	"quantity_rule", "min", "max", "increment", "json", "null", "copyright", "reserved",
	"rights", "powered", "shopify", "continue", "apply", "cancel", "confirm", "edit",
	"delete", "remove", "just", "being", "over", "both", "through", "yourselves", "before",
	"herself", "had", "should", "under", "ours", "has", "his", "very", "during", "him",
	"nor", "did", "she", "each", "further", "where", "few", "because", "doing", "some",
	"ourselves", "out", "while", "does", "above", "between", "who", "here", "hers",
	"about", "against", "own", "into", "yourself", "down", "might", "will", "her", "whom",
	"there", "been", "would", "such", "i", "have", "than", "he", "myself", "which",
	"below", "can", "after", "if", "again", "when", "same", "any", "many", "shan", "but",
	"until", "then", "once", "most", "too", "s", "t",
}

var defaultAttributes = []string{
	"king", "queen", "single", "double",
	"black", "white", "grey", "blue", "red", "green", "brown",
	"ash", "oak", "walnut", "metal", "leather", "fabric", "timber", "rattan",
}
