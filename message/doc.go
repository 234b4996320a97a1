// Package message defines the conversational turn type shared across promptkit.
//
// An Item is one turn: a role plus content. Content is either a plain
// string (optionally marked for template rendering) or a list of rich
// content parts for multimodal providers.
//
// # Construction
//
// Typed construction with defaults (role user, engine none):
//
//	item, err := message.New(message.Attrs{Content: "Hello"})
//
// From a loosely typed map, e.g. parsed JSON:
//
//	item, err := message.FromMap(map[string]any{
//	    "role":    "assistant",
//	    "content": "Hi there",
//	})
//
// Multipart content:
//
//	item, err := message.NewMultipart(message.RoleUser, []message.ContentPart{
//	    message.TextPart("What is in this image?"),
//	    message.ImagePart("https://example.com/cat.png"),
//	})
//
// Items are immutable values; none of the operations in this package
// mutate an existing Item.
package message
