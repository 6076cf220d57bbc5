package sqlinline

const QInsertEvent = `--sql 7e5a0c3d-91b4-4f27-8d6a-b20f4c8e1a35
insert into events(id, name, description, start_at, end_at, registration_opens_at,
                   entry_fee_cents, pro_fee_cents, is_active, charity_ids, created_by, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::timestamptz, $4::timestamptz, $5::timestamptz,
        $6::bigint, $7::bigint, false, $8::text[], $9::text, now())
returning id, created_at;
`

const eventColumns = `id, name, description, start_at, end_at, registration_opens_at,
       entry_fee_cents, pro_fee_cents, is_active, charity_ids, final_peak_orders, created_by, created_at`

const QSelectEventByID = `--sql 1b9d4e72-6c0a-48f5-b3e8-d57a29c1f046
select ` + eventColumns + `
from events
where id = $1::uuid;
`

const QSelectActiveEvent = `--sql 9c3f7a24-5e1d-4b86-a0c9-47e2d81b5f60
select ` + eventColumns + `
from events
where is_active
order by created_at
limit 1;
`

const QListEvents = `--sql e8a2c5f1-3d7b-40e9-96a4-1c5d08b3e7f2
select ` + eventColumns + `
from events
order by created_at;
`

// Activates only when no other event is active; zero rows means either the
// event is unknown or another event holds the slot.
const QActivateEvent = `--sql 2d6b8e43-a7f0-491c-85d2-e9b4671a0c3d
update events
set is_active = true
where id = $1::uuid
  and not exists (select 1 from events where is_active and id <> $1::uuid)
returning id;
`

// One-way transition: zero rows means unknown event or already finalized.
const QSetFinalPeakOrders = `--sql 6f0c2a85-4b9e-4d71-a3c6-9e58d2b7f014
update events
set final_peak_orders = $2::bigint
where id = $1::uuid
  and final_peak_orders is null
returning id;
`

const QEventExists = `--sql b7e49d16-2c8a-4f50-91b3-6a0d5e8c24f7
select exists(select 1 from events where id = $1::uuid);
`
