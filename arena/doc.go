/*
Package arena provides a paged slab allocator for fixed-size records.

Records are addressed by typed handles (Ref) instead of pointers. A handle stays
valid until its record is freed, even while the pool grows, because pages are
never moved once allocated. Freed records are recycled through a free list.

The zero handle is reserved and never returned by Alloc, so it can be used as
a nil value by clients.

Pools are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena
