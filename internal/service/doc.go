// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - Each service focuses on a specific area (inventory, studying, dashboard, maintenance)
//
// 2. Use Case Implementations:
//   - Coordinate between multiple stores and domain entities
//   - Apply transactional boundaries when operations span multiple stores
//     (membership changes, resets, seeding)
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include stores, the database handle for transactions,
//     and a logger
//
// 4. Error Handling:
//   - Store sentinel errors pass through so the API layer can map them to
//     HTTP status codes with errors.Is
//
// The service layer depends on domain entities and store interfaces, but
// never on specific infrastructure implementations.
package service
