// Package domain contains the core domain entities and types used by the
// platform. These types represent the business concepts (users, niches,
// subscriptions, published issues and monetisation configuration) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
