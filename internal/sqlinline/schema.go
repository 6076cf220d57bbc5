package sqlinline

// QSchema creates the tables the PostgreSQL store needs. Applied by
// cmd/admin -init; idempotent. The unique index on guesses(user_id,
// event_id) is what enforces the one-guess-per-user-per-event invariant
// under concurrent writers.
const QSchema = `--sql 3f6c1d2a-8e4b-4f0a-9c21-5b7d90e1a6c4
create table if not exists users (
    id uuid primary key default gen_random_uuid(),
    name text not null,
    team text not null default '',
    role text not null default 'user',
    locale text not null default 'en',
    created_at timestamptz not null default now()
);
create table if not exists events (
    id uuid primary key default gen_random_uuid(),
    name text not null,
    description text not null default '',
    start_at timestamptz not null,
    end_at timestamptz not null,
    registration_opens_at timestamptz not null,
    entry_fee_cents bigint not null default 0,
    pro_fee_cents bigint not null default 0,
    is_active boolean not null default false,
    charity_ids text[] not null default '{}',
    final_peak_orders bigint,
    created_by text not null default '',
    created_at timestamptz not null default now()
);
create table if not exists donations (
    id uuid primary key default gen_random_uuid(),
    user_id text not null,
    event_id uuid not null references events(id),
    amount_cents bigint not null check (amount_cents > 0),
    payment_method text not null,
    payment_note text not null default '',
    user_name text not null default '',
    is_paid boolean not null default false,
    created_at timestamptz not null default now()
);
create index if not exists donations_event_user_idx on donations(event_id, user_id);
create table if not exists guesses (
    id uuid primary key default gen_random_uuid(),
    event_id uuid not null references events(id),
    user_id text not null,
    value bigint not null check (value > 0),
    total_donation_cents bigint not null default 0,
    payment_method text not null,
    payment_note text not null default '',
    charity_id text not null default '',
    user_name text not null default '',
    team text not null default '',
    is_paid boolean not null default false,
    created_at timestamptz not null default now(),
    unique (user_id, event_id)
);
create table if not exists pro_access (
    id uuid primary key default gen_random_uuid(),
    event_id uuid not null references events(id),
    user_id text not null,
    granted_at timestamptz not null default now(),
    unique (user_id, event_id)
);
`
